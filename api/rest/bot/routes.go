package bot

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/chat"
)

func RegisterRoutes(router *gin.RouterGroup, responder *chat.Responder) {
	botGroup := router.Group("/bot")
	{
		botGroup.POST("/respond", RespondHandler(responder))
	}
}
