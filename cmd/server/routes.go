package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/api/rest/bot"
	"codeberg.org/humanvsbot/server/api/rest/health"
	"codeberg.org/humanvsbot/server/api/rest/models"
	"codeberg.org/humanvsbot/server/internal/errors"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})

	router.GET("/health", health.Handler)

	// the game middleware expects the respond endpoint under /api/bot
	api := router.Group("/api")

	{
		bot.RegisterRoutes(api, server.responder)
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		models.RegisterRoutes(v1, server.generator)
	}
}
