package bot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/chat"
	"codeberg.org/humanvsbot/server/internal/errors"
)

// RespondHandler godoc
// @Summary Get the bot's next reply for a game room
// @Description Relays the player's message to the generation backend and returns the persona's reply. Backend failures still return 200 with an in-character fallback.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body RespondRequest true "Conversation turn"
// @Success 200 {object} RespondResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/bot/respond [post]
func RespondHandler(responder *chat.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RespondRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		reply := responder.Respond(c.Request.Context(), req.SessionID, req.Text)

		c.JSON(http.StatusOK, RespondResponse{
			Reply: reply.Text,
			IsBot: reply.IsBot,
		})
	}
}
