package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	DBPath string // Path to the SQLite database file
	IsProd bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	dbPath := os.Getenv("DB_PATH")
	// Fall back to the default database file when unset
	if dbPath == "" {
		dbPath = "empresa.db"
	}
	return &Config{
		DBPath: dbPath,                         // SQLite database file
		IsProd: os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
