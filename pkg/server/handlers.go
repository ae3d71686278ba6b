package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/staragent/staragent-go/pkg/logger"
	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/persona"
)

// emptyMessageReply is returned for blank chat messages without hitting the
// model.
const emptyMessageReply = "你好，请说点什么吧～"

// ChatAgent is the slice of the agent the HTTP layer needs.
type ChatAgent interface {
	Celebrity() string
	Persona() *persona.Persona
	GenerateResponse(ctx context.Context, userMessage, userID string) (string, error)
}

// Handler serves the chat API.
type Handler struct {
	log   *logger.Logger
	agent ChatAgent
	store memory.Store
	ids   sessionIDSource
}

// sessionIDSource produces unique session identifiers.
type sessionIDSource interface {
	Generate() int64
}

// NewHandler creates the API handler.
func NewHandler(log *logger.Logger, agent ChatAgent, store memory.Store, ids sessionIDSource) *Handler {
	return &Handler{
		log:   log.With("handler", "chat"),
		agent: agent,
		store: store,
		ids:   ids,
	}
}

// Index issues a fresh session identifier and names the active celebrity.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"celebrity_name": h.agent.Celebrity(),
		"user_id":        fmt.Sprintf("user_%d", h.ids.Generate()),
	})
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Chat answers one fan message.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		req.UserID = "default_user"
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusOK, gin.H{"response": emptyMessageReply})
		return
	}

	response, err := h.agent.GenerateResponse(c.Request.Context(), req.Message, req.UserID)
	if err != nil {
		h.log.Error("chat failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// Memory returns the user's recent conversation history. Debug endpoint.
func (h *Handler) Memory(c *gin.Context) {
	userID := c.Param("user_id")
	history, err := h.store.GetHistory(c.Request.Context(), userID, 10)
	if err != nil {
		h.log.Error("failed to load history", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if history == nil {
		history = []memory.HistoryPair{}
	}
	c.JSON(http.StatusOK, history)
}

// Persona returns the active persona profile. Debug endpoint.
func (h *Handler) Persona(c *gin.Context) {
	c.JSON(http.StatusOK, h.agent.Persona())
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Celebrity Agent is running!",
	})
}
