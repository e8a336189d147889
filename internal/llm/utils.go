package llm

import (
	"net/http"

	"codeberg.org/humanvsbot/server/internal/config"
)

// returns the appropriate API key for the given provider
func getAPIKeyForProvider(provider Provider, baseConfig *config.Config) string {
	switch provider {
	case ProviderOpenAI:
		return baseConfig.OpenAIKey
	default:
		return baseConfig.GeminiKey
	}
}

// fills zero-valued sampling fields from the fallback profile. A zero value
// means unset: an explicit zero cannot be expressed and keeps the default.
func mergeGenerationConfig(config, fallback GenerationConfig) GenerationConfig {
	if config.Temperature == 0 {
		config.Temperature = fallback.Temperature
	}

	if config.TopP == 0 {
		config.TopP = fallback.TopP
	}

	if config.TopK == 0 {
		config.TopK = fallback.TopK
	}

	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = fallback.MaxOutputTokens
	}

	return config
}

// maps an HTTP status to the backend error taxonomy
func classifyStatus(status int) error {
	if status >= http.StatusInternalServerError {
		return ErrBackendUnavailable
	}

	return ErrBackendRejected
}
