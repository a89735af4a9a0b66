package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// eBay Finding API
	EbayAppID       string
	EbayEnvironment string

	// Saved-list backend: "json" (default) or "postgres"
	SavedBackend     string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Analysis pacing and retries
	PaceMs     int
	MaxRetries int
	PageSize   int

	// Default vehicle for a CLI run
	VehicleYear  string
	VehicleMake  string
	VehicleModel string
	VehicleType  string
	FilterMode   string
	MinSaveROI   float64

	// File paths
	JunkyardPricesCSV string
	SavedPartsDB      string
	CSVExportPath     string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		EbayAppID:       getEnv("EBAY_APP_ID", ""),
		EbayEnvironment: getEnv("EBAY_ENVIRONMENT", "production"),

		SavedBackend:     getEnv("SAVED_BACKEND", "json"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "parts"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "parts123"),
		PostgresDB:       getEnv("POSTGRES_DB", "parts_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		PaceMs:     getEnvInt("PACE_MS", 1000),
		MaxRetries: getEnvInt("MAX_RETRIES", 3),
		PageSize:   getEnvInt("SEARCH_PAGE_SIZE", 100),

		VehicleYear:  getEnv("VEHICLE_YEAR", ""),
		VehicleMake:  getEnv("VEHICLE_MAKE", ""),
		VehicleModel: getEnv("VEHICLE_MODEL", ""),
		VehicleType:  getEnv("VEHICLE_TYPE", "car"),
		FilterMode:   getEnv("FILTER_MODE", "high_priority"),
		MinSaveROI:   getEnvFloat("MIN_SAVE_ROI", 0),

		JunkyardPricesCSV: getEnv("JUNKYARD_PRICES_CSV", "Junkyard Pricing.csv"),
		SavedPartsDB:      getEnv("SAVED_PARTS_DB", "saved_parts.json"),
		CSVExportPath:     getEnv("CSV_EXPORT_PATH", "./output/parts_list.csv"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// HasEbayCredentials reports whether a live market resolver can be built.
func (c *Config) HasEbayCredentials() bool {
	return c.EbayAppID != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
