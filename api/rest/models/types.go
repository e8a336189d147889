package models

import "codeberg.org/humanvsbot/server/internal/llm"

// response payload for the model listing endpoint
type ListResponse struct {
	Models []llm.ModelInfo `json:"models"`
}
