package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eugenechae/podcast-index-mcp/api/health"
	"github.com/eugenechae/podcast-index-mcp/api/tools"
	"github.com/eugenechae/podcast-index-mcp/api/types"
	"github.com/eugenechae/podcast-index-mcp/api/version"
	_ "github.com/eugenechae/podcast-index-mcp/docs/swagger"
	"github.com/eugenechae/podcast-index-mcp/internal/services/podcastindex"
	"github.com/eugenechae/podcast-index-mcp/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) error {
	// Public routes
	health.RegisterRoutes(engine)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize the podcast client if not injected (tests inject a mock)
	if deps.PodcastClient == nil {
		cfg, err := config.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client, err := podcastindex.NewClient(podcastindex.Config{
			APIKey:    cfg.PodcastIndex.APIKey,
			APISecret: cfg.PodcastIndex.APISecret,
			BaseURL:   cfg.PodcastIndex.BaseURL,
			UserAgent: cfg.PodcastIndex.UserAgent,
			Timeout:   cfg.PodcastIndex.Timeout,
		})
		if err != nil {
			return err
		}
		deps.PodcastClient = client
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	toolsGroup := v1.Group("/tools")
	tools.RegisterRoutes(toolsGroup, deps)

	return nil
}
