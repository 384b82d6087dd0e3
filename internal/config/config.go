package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Layout engine defaults, adjustable at runtime per request
	ExpirationHours int
	ClusterRadius   float64 // base grouping radius in degrees
	MinLikesForZoom int
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/geogram.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		ExpirationHours: envInt("EXPIRATION_HOURS", 24),
		ClusterRadius:   envFloat("CLUSTER_RADIUS", 0.009), // ~900m at zoom 13
		MinLikesForZoom: envInt("MIN_LIKES_FOR_ZOOM", 5),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
