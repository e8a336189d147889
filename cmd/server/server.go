package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/chat"
	"codeberg.org/humanvsbot/server/internal/config"
	"codeberg.org/humanvsbot/server/internal/llm"
	"codeberg.org/humanvsbot/server/internal/logger"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	generator, err := llm.NewTextGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation backend client: %w", err)
	}

	store := chat.NewStore(chat.PrimingHistory(), cfg.SessionTTL, cfg.CleanupInterval)
	responder := chat.NewResponder(store, generator)

	logger.Info("generation backend configured",
		"provider", cfg.Provider,
		"model", generator.Model(),
		"session_ttl", cfg.SessionTTL,
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:    cfg,
		store:     store,
		responder: responder,
		generator: generator,
		router:    router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
