package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"usuarios-api/internal/model"
)

// Connect returns a connected GORM DB instance. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey instead of a
// driver-specific error code.
//
// Outside development the DSN gets tls=skip-verify unless the caller already
// chose a tls mode. Managed database hosts terminate TLS with certificates
// the container image cannot always verify; this relaxation is a documented
// trade-off, not a recommended default.
func Connect(dsn, env string) (*gorm.DB, error) {
	if env != "development" && !strings.Contains(dsn, "tls=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "tls=skip-verify"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// EnsureSchema idempotently creates the usuarios table. Safe to call
// repeatedly; it is run once before the listener starts and again on demand
// by the /test-db diagnostic endpoint.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
