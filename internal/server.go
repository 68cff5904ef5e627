package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/campusmatch/backend/internal/config"
	"github.com/campusmatch/backend/internal/datastore/media"
	"github.com/campusmatch/backend/internal/datastore/postgres"
	redisClient "github.com/campusmatch/backend/internal/datastore/redis"
	"github.com/campusmatch/backend/internal/datastore/sqlite"
	matchRepo "github.com/campusmatch/backend/internal/repository/match"
	messageRepo "github.com/campusmatch/backend/internal/repository/message"
	userRepo "github.com/campusmatch/backend/internal/repository/user"
	"github.com/campusmatch/backend/internal/routes"
	authUseCase "github.com/campusmatch/backend/internal/usecase/auth"
	"github.com/campusmatch/backend/internal/usecase/chat"
	"github.com/campusmatch/backend/internal/usecase/match"
	"github.com/campusmatch/backend/internal/usecase/profile"
	"github.com/campusmatch/backend/pkg/path"
	"github.com/go-redis/redis"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
}

// NewServer wires the repositories, usecases and routes onto an Echo
// instance. Dependencies are injected; nothing hangs off package
// globals.
func NewServer(ctx context.Context, w io.Writer, cfg *config.Config, db *gorm.DB, rdb *redisClient.RedisClient, mediaStore *media.Store) *Server {
	e := echo.New()

	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	users := userRepo.New(db)
	matches := matchRepo.NewMatchRepo(db, rdb)
	messages := messageRepo.New(db)

	authCase := authUseCase.New(users, mediaStore)
	profileCase := profile.NewProfileUseCase(users)
	matchCase := match.NewMatchUseCase(matches)
	chatCase := chat.NewChatUseCase(messages)

	uploadDir := ""
	if mediaStore != nil {
		uploadDir = mediaStore.Dir()
	}
	routes.InitRoutes(e, authCase, profileCase, matchCase, chatCase, uploadDir)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	return &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database: db,
	}
}

// Handler exposes the HTTP handler for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Run is the process entry point: config, stores, server, graceful
// shutdown when ctx is canceled.
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	for _, a := range args {
		switch strings.ToLower(a) {
		case "dev", "test", "prod":
			env = strings.ToLower(a)
		}
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return err
	}

	initLogger(cfg)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	rdb := connectRedis(cfg)

	mediaStore, err := media.NewStore(cfg.Get("UPLOAD_DIR"))
	if err != nil {
		return err
	}

	server := NewServer(ctx, w, cfg, db, rdb, mediaStore)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("server shutdown")
		}
	}()

	if err := server.StartServer(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Get("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openDatabase selects the store by DB_DRIVER: Postgres with SQL
// migrations, or the local SQLite variant.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Get("DB_DRIVER") {
	case "sqlite":
		return sqlite.InitializeDB(cfg.Get("SQLITE_PATH"))
	default:
		db, err := postgres.InitializeDB(
			cfg.Get("POSTGRES_USER"),
			cfg.Get("POSTGRES_PASSWORD"),
			cfg.Get("POSTGRES_DB_NAME"),
			cfg.Get("POSTGRES_HOST"),
			cfg.Get("POSTGRES_PORT"),
		)
		if err != nil {
			return nil, err
		}

		basePath, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		migrationsRoot, err := path.FindRoot(basePath, "migrations", true)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db, "file://"+migrationsRoot+"/migrations"); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return db, nil
	}
}

// connectRedis returns nil when redis is unreachable; the match cache is
// an optimization, not a dependency.
func connectRedis(cfg *config.Config) *redisClient.RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Get("REDIS_HOST") + ":" + cfg.Get("REDIS_PORT"),
	})

	rdb := redisClient.NewRedis(client)
	if err := rdb.Ping(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, match cache disabled")
		return nil
	}
	return rdb
}
