// Package server exposes the chat agent over HTTP.
//
// The surface is deliberately thin: one chat endpoint plus a session issuer
// and two debug endpoints. All chat semantics live in the agent package.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/staragent/staragent-go/pkg/logger"
	"github.com/staragent/staragent-go/pkg/memory"
)

// Server is the HTTP front for the chat agent.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	log    *logger.Logger
}

// snowflakeIDs adapts a snowflake node to the handler's id source.
type snowflakeIDs struct {
	node *snowflake.Node
}

func (s snowflakeIDs) Generate() int64 {
	return s.node.Generate().Int64()
}

// New builds the server and registers all routes.
func New(log *logger.Logger, agent ChatAgent, store memory.Store, port int) (*Server, error) {
	node, err := snowflake.NewNode(2)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(log))

	handler := NewHandler(log, agent, store, snowflakeIDs{node: node})
	registerRoutes(engine, handler)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}, nil
}

func registerRoutes(engine *gin.Engine, h *Handler) {
	engine.GET("/", h.Index)
	engine.POST("/chat", h.Chat)
	engine.GET("/memory/:user_id", h.Memory)
	engine.GET("/persona", h.Persona)
	engine.GET("/health", h.Health)
}

// Engine returns the underlying gin engine, used by tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
