package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerateText_Success(t *testing.T) {
	var gotReq chatCompletionRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		//nolint:errcheck
		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": " deadass no "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 3}
		}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

	resp, err := client.GenerateText(context.Background(), GenerationRequest{
		Messages: []Message{
			{Role: RoleUser, Content: "INSTRUCTION: act human"},
			{Role: RoleModel, Content: "bet"},
			{Role: RoleUser, Content: "prove it"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "deadass no", resp.Text)
	assert.Equal(t, 20, resp.Usage.InputTokens)
	assert.Equal(t, "Bearer sk-test", gotAuth)

	// history "model" role maps to the wire's "assistant"
	require.Len(t, gotReq.Messages, 3)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "assistant", gotReq.Messages[1].Role)

	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, 100, gotReq.MaxTokens)
}

func TestOpenAIGenerateText_AuthErrorIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "sk-bad", BaseURL: server.URL})

	_, err := client.GenerateText(context.Background(), GenerationRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendRejected)
}

func TestOpenAIGenerateText_NoChoicesIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.GenerateText(context.Background(), GenerationRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendMalformedResponse)
}

func TestNewTextGeneratorWithConfig(t *testing.T) {
	gemini, err := NewTextGeneratorWithConfig(&Config{Provider: ProviderGemini, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "gemma-3-27b-it", gemini.Model())

	openai, err := NewTextGeneratorWithConfig(&Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", openai.Model())

	_, err = NewTextGeneratorWithConfig(&Config{Provider: "mystery", APIKey: "k"})
	assert.Error(t, err)

	_, err = NewTextGeneratorWithConfig(nil)
	assert.Error(t, err)
}
