// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration assembled from environment variables.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	UploadDir    string
}

// Load reads the application configuration from the environment.
// DATABASE_URL and GEMINI_API_KEY are required; UPLOAD_DIR defaults to "uploads".
func Load(port int) (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	return &Config{
		Port:         port,
		DatabaseURL:  databaseURL,
		GeminiAPIKey: apiKey,
		UploadDir:    uploadDir,
	}, nil
}
