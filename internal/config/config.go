package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel  string
	LogFormat string

	// Text of the heading synthesized for content before the first heading
	PlaceholderText string

	NotionAPIKey       string
	NotionParentPageID string
	NotionRetries      int
}

// Load reads configuration from the environment. A .env file in the current
// directory is loaded first if present; variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		PlaceholderText:    getEnv("PLACEHOLDER_TEXT", ""),
		NotionAPIKey:       os.Getenv("NOTION_API_KEY"),
		NotionParentPageID: os.Getenv("NOTION_PARENT_PAGE_ID"),
	}

	retries, err := getEnvInt("NOTION_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	if retries <= 0 {
		return nil, fmt.Errorf("NOTION_RETRIES must be greater than 0")
	}
	cfg.NotionRetries = retries

	return cfg, nil
}

// RequireNotion reports an error when the Notion credentials are missing
func (c *Config) RequireNotion() error {
	if c.NotionAPIKey == "" {
		return fmt.Errorf("NOTION_API_KEY is not set")
	}
	if c.NotionParentPageID == "" {
		return fmt.Errorf("NOTION_PARENT_PAGE_ID is not set")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}
