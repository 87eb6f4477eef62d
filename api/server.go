package api

import (
	"context"
	"net/http"
	"time"

	"github.com/eugenechae/podcast-index-mcp/api/types"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server exposing the tool-calling surface
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// ServerOptions controls HTTP server timeouts and limits
type ServerOptions struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderBytes int
}

// NewServer creates a new HTTP server
func NewServer(address string, opts ServerOptions) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.MaxHeaderBytes == 0 {
		opts.MaxHeaderBytes = 1 << 20
	}

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: opts.MaxHeaderBytes,
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.engine.Use(gin.Logger())
	s.engine.Use(CORS())
	s.engine.Use(RequestSizeLimit())

	return RegisterRoutes(s.engine, s.dependencies)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
