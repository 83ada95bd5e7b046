// Package config loads server/CLI configuration from the environment,
// following the .env-then-os.Getenv pattern the backend already used
// for its HTTP server.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the transport layer needs to start.
type Config struct {
	Addr      string
	JWTSecret string
	Verbosity string
}

// Load reads a .env file if present (missing is not an error) and
// layers environment variables with defaults over it.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return Config{
		Addr:      getEnv("WFC_ADDR", ":8080"),
		JWTSecret: getEnv("WFC_JWT_SECRET", "dev-secret-change-in-production"),
		Verbosity: getEnv("WFC_VERBOSITY", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
