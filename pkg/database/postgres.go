package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	return db
}

// Migrate creates or updates every table plus the indexes gorm tags cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	stmts := []string{
		// list-membership filters on the musician search page
		`CREATE INDEX IF NOT EXISTS idx_musicians_genres ON musicians USING GIN (genres)`,
		`CREATE INDEX IF NOT EXISTS idx_musicians_instruments ON musicians USING GIN (instruments)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscribers_email_lower ON subscribers (lower(email))`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications (user_id) WHERE read = false`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
