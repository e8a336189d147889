package llm

import (
	"fmt"

	"codeberg.org/humanvsbot/server/internal/config"
)

// creates a text generator from the validated base configuration, picking up
// model and sampling overrides from the environment
func NewTextGenerator(baseConfig *config.Config) (TextGenerator, error) {
	if baseConfig == nil {
		return nil, fmt.Errorf("base config cannot be nil")
	}

	provider := Provider(baseConfig.Provider)

	llmConfig, err := loadConfig(provider, getAPIKeyForProvider(provider, baseConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewTextGeneratorWithConfig(llmConfig)
}

// creates a text generator with explicit configuration
func NewTextGeneratorWithConfig(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(GeminiConfig{
			APIKey:     config.APIKey,
			Model:      config.Model,
			Generation: config.Generation,
		}), nil
	case ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			APIKey:     config.APIKey,
			Model:      config.Model,
			Generation: config.Generation,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
