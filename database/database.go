package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parlayPickem/config"
	"parlayPickem/models"
)

// Connect opens the MySQL connection and runs automigration. The handle
// is returned to the caller and threaded through every service call;
// nothing holds a process-wide instance.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseDSN
	if !strings.Contains(dsn, "parseTime") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "charset=utf8mb4&parseTime=True&loc=Local"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

// Migrate is separate from Connect so tests can run it against their own
// databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Matchup{},
		&models.Odds{},
		&models.Parlay{},
		&models.Pick{},
		&models.ErrorLog{},
	)
}
