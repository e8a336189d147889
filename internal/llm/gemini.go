package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemma-3-27b-it"
)

// default sampling profile: biased toward short, low-latency, high-variety replies
var defaultGenerationConfig = GenerationConfig{
	Temperature:     0.85,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 100,
}

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (50 requests/second with burst capacity of 10)
var geminiRateLimiter = rate.NewLimiter(50, 10)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		DisplayName                string   `json:"displayName"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

type GeminiConfig struct {
	APIKey     string
	Model      string // e.g., "gemma-3-27b-it"
	BaseURL    string // defaults to the public API endpoint
	Generation GenerationConfig
}

type GeminiClient struct {
	config     GeminiConfig
	httpClient *http.Client
}

func NewGeminiClient(config GeminiConfig) *GeminiClient {
	if config.Model == "" {
		config.Model = defaultGeminiModel
	}

	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}

	config.Generation = mergeGenerationConfig(config.Generation, defaultGenerationConfig)

	return &GeminiClient{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (c *GeminiClient) Model() string {
	return c.config.Model
}

// generates the next turn for the given conversation, resending the full
// history each call (the backend is treated as stateless)
func (c *GeminiClient) GenerateText(ctx context.Context, req GenerationRequest) (*GenerationResponse, error) {
	contents := make([]geminiContent, 0, len(req.Messages))

	for _, msg := range req.Messages {
		contents = append(contents, geminiContent{
			Role:  msg.Role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	genConfig := mergeGenerationConfig(req.Config, c.config.Generation)

	reqBody := generateContentRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     genConfig.Temperature,
			TopP:            genConfig.TopP,
			TopK:            genConfig.TopK,
			MaxOutputTokens: genConfig.MaxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrBackendRejected, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrBackendRejected, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrBackendUnavailable, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("%w: status %d: %s", classifyStatus(resp.StatusCode), resp.StatusCode, string(body))
	}

	var apiResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrBackendMalformedResponse, err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content in response", ErrBackendMalformedResponse)
	}

	text := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty reply text", ErrBackendMalformedResponse)
	}

	return &GenerationResponse{
		Text: text,
		Usage: Usage{
			InputTokens:  apiResp.UsageMetadata.PromptTokenCount,
			OutputTokens: apiResp.UsageMetadata.CandidatesTokenCount,
		},
	}, nil
}

// returns the models the configured credential can use for chat generation
func (c *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	url := fmt.Sprintf("%s/models", c.config.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrBackendRejected, err)
	}

	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrBackendUnavailable, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("%w: status %d: %s", classifyStatus(resp.StatusCode), resp.StatusCode, string(body))
	}

	var apiResp listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrBackendMalformedResponse, err)
	}

	// only models that can generate chat content are useful here
	models := make([]ModelInfo, 0, len(apiResp.Models))

	for _, m := range apiResp.Models {
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				models = append(models, ModelInfo{Name: m.Name, DisplayName: m.DisplayName})
				break
			}
		}
	}

	return models, nil
}
