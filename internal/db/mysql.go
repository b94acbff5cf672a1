// Package db opens the persistent stores backing the task API.
package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens the MySQL task store over GORM. Pooling is left at the
// driver defaults.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql task store: %w", err)
	}
	return gormDB, nil
}
