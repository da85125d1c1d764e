// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Catalog source kinds.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Config holds all configuration values for the application.
type Config struct {
	// Catalog
	CatalogSource string
	CatalogPath   string
	CatalogS3Key  string

	// AWS
	AWSRegion string
	S3Bucket  string

	// Database
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// Scoring
	ScoringConfigFile string
	PrimaryResults    int

	// Application
	Port     string
	Stage    string
	LogLevel string
	Version  string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// Catalog
		CatalogSource: getEnv("CATALOG_SOURCE", CatalogSourceEmbedded),
		CatalogPath:   getEnv("CATALOG_PATH", "catalog.json"),
		CatalogS3Key:  getEnv("CATALOG_S3_KEY", "catalog/visa-catalog.json"),

		// AWS
		AWSRegion: getEnv("AWS_REGION", "ap-southeast-1"),
		S3Bucket:  getEnv("S3_BUCKET", "visa-catalog-dev"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "visa_eligibility"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		// Scoring
		ScoringConfigFile: getEnv("SCORING_CONFIG_FILE", ""),
		PrimaryResults:    getEnvInt("PRIMARY_RESULTS", 3),

		// Application
		Port:     getEnv("PORT", "8080"),
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Version:  getEnv("SERVICE_VERSION", "1.0.0"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	sslMode := "require" // Use SSL for RDS
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + "/" + c.DBName + "?sslmode=" + sslMode
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
