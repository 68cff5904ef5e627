package sqlite

import (
	"fmt"

	"github.com/campusmatch/backend/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitializeDB opens (or creates) the SQLite database at path and keeps
// the schema in sync with the models. Pass ":memory:" for a throwaway
// database. This is the local-development variant; production runs
// against Postgres with SQL migrations.
func InitializeDB(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&entity.User{}, &entity.Like{}, &entity.Match{}, &entity.Message{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
