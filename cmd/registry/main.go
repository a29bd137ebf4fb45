package main

import (
	"os" // Stdin/stdout for the interactive menu

	"customer_registry/internal/config" // Custom package for configuration
	"customer_registry/internal/db"     // Custom package for the database
	"customer_registry/internal/menu"   // Custom package for the command loop
	"customer_registry/internal/store"  // Custom package for data operations

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the registry
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Quiet operational logging in production so it doesn't mix into the menu
	if cfg.IsProd {
		logrus.SetLevel(logrus.WarnLevel)
	}

	// Ensure the database schema exists before entering the menu
	if err := db.Migrate(cfg.DBPath); err != nil {
		logrus.Fatalf("failed to prepare database: %v", err) // Fatal error if schema setup fails
	}

	// Run the interactive menu until the operator exits
	menu.Run(os.Stdin, os.Stdout, store.New(cfg.DBPath))
}
