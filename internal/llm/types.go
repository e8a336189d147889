package llm

import "context"

// represents different generation backend providers
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// conversation roles as stored in session history
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// generates the next reply for a conversation
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
	Model() string
}

// lists backend models capable of chat generation
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "model"
	Content string `json:"content"` // message content
}

// contains the full conversation to generate a reply for
type GenerationRequest struct {
	Messages []Message
	Config   GenerationConfig // zero values fall back to the client's defaults
}

// fixed sampling profile passed through to the backend.
// Zero values mean unset and fall back to the default profile; explicit zeros
// (e.g. greedy temperature 0) are not expressible.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
}

// contains the generated reply and token usage
type GenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// describes a backend model available to the configured credential
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

// holds configuration for backend client initialization
type Config struct {
	Provider   Provider
	APIKey     string
	Model      string // e.g., "gemma-3-27b-it"
	Generation GenerationConfig
}
