package config

import "os"

// Config holds the process configuration, read from the environment (a .env
// file is loaded by main before this runs).
type Config struct {
	DatabaseURL string
	HTTPAddr    string
	LogLevel    string
}

func Load() *Config {
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
