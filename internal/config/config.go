// Package config centralises configuration parsing for the weight service.
package config

import "os"

// DefaultUserID is the placeholder identity used until real accounts exist.
const DefaultUserID = "00000000-0000-0000-0000-000000000001"

// Config captures runtime configuration values for the service.
type Config struct {
	Addr        string
	DatabaseURL string
	UserID      string
}

// Load reads environment variables into Config, applying defaults for local
// dev. DatabaseURL has no default; main refuses to start without it.
func Load() Config {
	return Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UserID:      getEnv("DEFAULT_USER_ID", DefaultUserID),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
