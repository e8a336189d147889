package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultSessionTTL      = 24 * time.Hour
	defaultCleanupInterval = 5 * time.Minute
)

// origins allowed when ALLOWED_ORIGINS is not set: local frontend dev server
// plus the deployed game middleware
var defaultAllowedOrigins = []string{
	"http://localhost:4200",
	"https://humanvsbot-middleware.onrender.com",
}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	// the server cannot answer a single turn without its backend credential,
	// so a missing key is fatal at startup rather than a per-request error
	switch provider {
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", provider)
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	allowedOrigins := defaultAllowedOrigins
	if originsStr := os.Getenv("ALLOWED_ORIGINS"); originsStr != "" {
		allowedOrigins = splitOrigins(originsStr)
	}

	sessionTTL := defaultSessionTTL
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		val, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		sessionTTL = val
	}

	cleanupInterval := defaultCleanupInterval
	if intervalStr := os.Getenv("SESSION_CLEANUP_INTERVAL"); intervalStr != "" {
		val, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_CLEANUP_INTERVAL: %w", err)
		}
		cleanupInterval = val
	}

	return &Config{
		GeminiKey:       geminiKey,
		OpenAIKey:       openaiKey,
		Provider:        provider,
		AllowedOrigins:  allowedOrigins,
		Port:            port,
		Environment:     environment,
		SessionTTL:      sessionTTL,
		CleanupInterval: cleanupInterval,
	}, nil
}

// splits a comma-separated origin list, trimming whitespace and empty entries
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
