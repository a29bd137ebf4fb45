package db

import (
	"fmt" // Error wrapping

	"customer_registry/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
)

// Migrate performs automatic migration for the database schema.
// It is idempotent: existing tables are left untouched, missing tables,
// foreign keys, constraints, columns and indexes are created.
func Migrate(path string) error {
	conn, err := Open(path) // Open a connection to the database
	if err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	defer Close(conn) // Release the connection when done

	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := conn.AutoMigrate(&domain.Customer{}, &domain.Order{}); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
