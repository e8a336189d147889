package models

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/humanvsbot/server/internal/errors"
	"codeberg.org/humanvsbot/server/internal/llm"
)

// ListHandler godoc
// @Summary List chat-capable backend models
// @Description Lists the generation backend models the configured credential can use. Operator surface: backend failures surface as 502 here, unlike the respond path.
// @Tags models
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/models [get]
func ListHandler(lister llm.ModelLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		modelList, err := lister.ListModels(c.Request.Context())
		if err != nil {
			errors.BadGateway(c, "failed to list backend models", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Models: modelList})
	}
}
