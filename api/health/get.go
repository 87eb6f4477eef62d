package health

import (
	"net/http"
	"time"

	"github.com/eugenechae/podcast-index-mcp/api/types"
	"github.com/gin-gonic/gin"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports process liveness
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
