package config

import (
	"os"
	"strings"

	"github.com/campusmatch/backend/pkg/path"
	"github.com/joho/godotenv"
)

type IConfig interface {
	Get(key string) string
}

// Config holds the resolved environment for one run. Keys are read with
// an environment prefix (DEV_, TEST_, PROD_) so several environments can
// share one .env file.
type Config struct {
	Key map[string]string
	Env string
}

func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	// .env is optional; plain process env works too.
	if basePath, err := os.Getwd(); err == nil {
		if root, err := path.FindRoot(basePath, ".env", false); err == nil {
			_ = godotenv.Load(root + "/.env")
		}
	}

	return &Config{
		Key: map[string]string{
			"DB_DRIVER":         getEnv(env+"_DB_DRIVER", "postgres"),
			"POSTGRES_DB_NAME":  getEnv(env+"_POSTGRES_DB_NAME", ""),
			"POSTGRES_USER":     getEnv(env+"_POSTGRES_USER", ""),
			"POSTGRES_PASSWORD": getEnv(env+"_POSTGRES_PASSWORD", ""),
			"POSTGRES_HOST":     getEnv(env+"_POSTGRES_HOST", "localhost"),
			"POSTGRES_PORT":     getEnv(env+"_POSTGRES_PORT", "5432"),
			"SQLITE_PATH":       getEnv(env+"_SQLITE_PATH", "campusmatch.db"),
			"REDIS_HOST":        getEnv(env+"_REDIS_HOST", "localhost"),
			"REDIS_PORT":        getEnv(env+"_REDIS_PORT", "6379"),
			"UPLOAD_DIR":        getEnv(env+"_UPLOAD_DIR", "static/uploads"),
			"LOG_LEVEL":         getEnv("LOG_LEVEL", "info"),
			"PORT":              getEnv("PORT", "8080"),
		},
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}
