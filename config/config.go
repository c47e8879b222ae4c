package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	AllowedOrigin string
}

// Load reads configuration from the environment. A .env file is loaded if
// present. MONGO_URI carries database credentials and therefore has no
// fallback value.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "3001"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getEnv("DB_NAME", "CoLabX"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "https://colabx-frontend.vercel.app"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
