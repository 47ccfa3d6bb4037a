package config

import (
	"os"
	"time"
)

// Get returns the environment value for key, or fallback when unset
// or empty. Call godotenv.Load first so .env files participate.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetDuration parses the environment value as a time.Duration,
// returning fallback when unset or malformed.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
