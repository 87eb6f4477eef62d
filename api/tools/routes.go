package tools

import (
	"github.com/eugenechae/podcast-index-mcp/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers tool discovery and invocation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List())
	router.POST("/:name", Call(deps))
}
