package db

import (
	"fmt"

	"github.com/Rodrigo-Rojo/blog/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database at path and migrates the posts table.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of raw driver errors.
func Open(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := conn.AutoMigrate(&models.Post{}); err != nil {
		return nil, fmt.Errorf("failed to migrate posts table: %w", err)
	}
	return conn, nil
}
