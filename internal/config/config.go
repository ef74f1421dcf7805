package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryUploadFolder string

	// ListLimit caps every list endpoint. Results beyond it are truncated;
	// the cap is deliberate configuration, not a magic number.
	ListLimit int

	// RateLimitCreate is the per-user window between resource creations.
	// Zero disables the limiter.
	RateLimitCreate time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "fitnesspro"),
	}

	var err error
	cfg.ListLimit, err = strconv.Atoi(getEnv("LIST_LIMIT", "1000"))
	if err != nil || cfg.ListLimit <= 0 {
		return nil, fmt.Errorf("invalid LIST_LIMIT: %q", getEnv("LIST_LIMIT", "1000"))
	}

	cfg.RateLimitCreate, err = time.ParseDuration(getEnv("RATE_LIMIT_CREATE", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CREATE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
