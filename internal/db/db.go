package db

import (
	"fmt" // DSN construction and error wrapping

	_ "github.com/mattn/go-sqlite3" // SQLite driver used by the GORM dialector

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM logger configuration
)

// Open acquires a fresh connection to the SQLite database at path.
// Foreign-key enforcement is baked into the DSN so every connection has it
// active from the start; cascade deletes depend on it. Callers must release
// the connection with Close on every exit path.
func Open(path string) (*gorm.DB, error) {
	// _foreign_keys=on enables referential-integrity enforcement for this connection
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // console output belongs to the menu, not GORM
	})
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", path, err)
	}
	return conn, nil
}

// Close releases the underlying connection of a handle returned by Open
func Close(conn *gorm.DB) {
	sqlDB, err := conn.DB() // Get the underlying sql.DB
	if err != nil {
		return
	}
	_ = sqlDB.Close() // Release the connection
}
