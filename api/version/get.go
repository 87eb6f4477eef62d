package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set from cmd at startup
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary      Version information
// @Description  Reports the running build's version and commit
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Podcast Index MCP",
			"version": Version,
			"commit":  GitCommit,
		})
	}
}
