package config

import "time"

type Config struct {
	GeminiKey       string
	OpenAIKey       string
	Provider        string
	AllowedOrigins  []string
	Port            string
	Environment     string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
}
