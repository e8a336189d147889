package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/chat"
	"codeberg.org/humanvsbot/server/internal/config"
	"codeberg.org/humanvsbot/server/internal/llm"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	store     *chat.Store
	responder *chat.Responder
	generator llm.TextGenerator
	router    *gin.Engine
}
