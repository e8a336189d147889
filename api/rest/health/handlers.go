package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status. Static liveness only: the generation
// backend is deliberately not probed here.
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "AI Brain is online",
		Service: "humanvsbot",
		Version: "1.0.0",
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
