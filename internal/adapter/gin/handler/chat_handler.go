package handler

import (
	"net/http"

	"taskflow/internal/usecase/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler handles HTTP requests for the chat responder
type ChatHandler struct {
	uc  chat.Usecase
	log *zap.Logger
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(uc chat.Usecase, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		uc:  uc,
		log: log,
	}
}

// ChatRequest represents the HTTP request body for a chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
}

// ChatResponse represents the HTTP response for a chat message
type ChatResponse struct {
	Response        string `json:"response"`
	ActionTaken     string `json:"action_taken"`
	SuggestedAction string `json:"suggested_action"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	reply, err := h.uc.Respond(c.Request.Context(), chat.Request{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Response:        reply.Response,
		ActionTaken:     reply.ActionTaken,
		SuggestedAction: reply.SuggestedAction,
	})
}
