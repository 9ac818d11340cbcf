package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"video-catalog/cmd/config"
	"video-catalog/pkg/models"
)

// Open connects through gorm for the sqlite3 and postgres drivers.
func Open(cfg config.Database) (*gorm.DB, error) {
	if cfg.Driver != "sqlite3" && cfg.Driver != "postgres" {
		return nil, fmt.Errorf("gorm does not handle driver %q", cfg.Driver)
	}

	db, err := gorm.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// Query errors are reported by the caller; gorm must not print its own copy.
	db.LogMode(false)

	// Local bootstrap only. Production schemas are owned by the catalog writer.
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Video{}).Error; err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate videos table: %w", err)
		}
		log.Printf("database: videos table ready (%s)", cfg.Driver)
	}
	return db, nil
}

// OpenPool connects a pgx pool for the pgx driver and checks it responds.
func OpenPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres not responding: %w", err)
	}
	return pool, nil
}
