package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig builds backend client configuration from the given credential and
// the model/sampling environment overrides. Credential presence is validated at
// startup by internal/config; the check here only guards direct callers.
func loadConfig(provider Provider, apiKey string) (*Config, error) {
	switch provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %s", provider)
	}

	model := os.Getenv("LLM_MODEL") // empty means client default

	// sampling overrides, defaults favor short varied replies.
	// An explicit zero override is indistinguishable from unset and keeps the
	// default (see mergeGenerationConfig).
	generation := defaultGenerationConfig

	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			generation.Temperature = float32(val)
		}
	}

	if topPStr := os.Getenv("LLM_TOP_P"); topPStr != "" {
		if val, err := strconv.ParseFloat(topPStr, 32); err == nil {
			generation.TopP = float32(val)
		}
	}

	if topKStr := os.Getenv("LLM_TOP_K"); topKStr != "" {
		if val, err := strconv.Atoi(topKStr); err == nil {
			generation.TopK = val
		}
	}

	if maxTokensStr := os.Getenv("LLM_MAX_OUTPUT_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			generation.MaxOutputTokens = val
		}
	}

	return &Config{
		Provider:   provider,
		APIKey:     apiKey,
		Model:      model,
		Generation: generation,
	}, nil
}
