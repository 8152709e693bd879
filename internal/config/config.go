// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

var ErrSecretMissing = errors.New("JWT_SECRET must be set when GIN_MODE is release")

// Config is the runtime configuration of the backend.
type Config struct {
	Port          string // Port the HTTP server listens on
	DBDSN         string // Path of the sqlite database file
	JWTSecret     string // Secret used to sign bearer tokens
	UploadDir     string // Directory receipt uploads are stored in
	SeedDemoUsers bool   // Create well-known demo users on startup
}

// Load reads the configuration from the environment.
//
// A .env file in the working directory is loaded first when present,
// explicit environment variables take precedence over it.
func Load() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	c := Config{
		Port:          getenv("PORT", "3001"),
		DBDSN:         getenv("DB_DSN", "data/ledgerline.db"),
		JWTSecret:     getenv("JWT_SECRET", ""),
		UploadDir:     getenv("UPLOAD_DIR", "data/uploads"),
		SeedDemoUsers: os.Getenv("SEED_DEMO_USERS") == "true",
	}

	if c.JWTSecret == "" {
		// A predictable secret is acceptable for development only
		if os.Getenv("GIN_MODE") == "release" {
			return Config{}, ErrSecretMissing
		}
		c.JWTSecret = "dev-secret"
	}

	return c, nil
}

func getenv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}
