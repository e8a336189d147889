package models

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/llm"
)

// registers the model listing endpoint when the configured backend supports it
func RegisterRoutes(router *gin.RouterGroup, generator llm.TextGenerator) {
	lister, ok := generator.(llm.ModelLister)
	if !ok {
		return
	}

	router.GET("/models", ListHandler(lister))
}
