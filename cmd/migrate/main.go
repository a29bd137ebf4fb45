package main

import (
	"customer_registry/internal/config" // Custom import path (Config)
	"customer_registry/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Ensure the customers and orders tables exist
	if err := db.Migrate(cfg.DBPath); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Fatal error if migration fails
	}
}
