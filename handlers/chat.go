package handlers

import (
	"net/http"
	"strconv"

	conversationRepo "vetchat/database/repository/conversation"
	"vetchat/models"
	"vetchat/services/dialogue"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the dialogue engine and conversation queries over HTTP.
type ChatHandler struct {
	Engine dialogue.Engine
	Convos conversationRepo.ConversationRepository
	Logger *zap.Logger
}

func NewChatHandler(engine dialogue.Engine, convos conversationRepo.ConversationRepository, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Engine: engine, Convos: convos, Logger: logger}
}

// SendMessage handles POST /api/chat/message.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	resp, err := h.Engine.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("failed to process chat message", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"sessionId": resp.SessionID,
			"message":   resp.Reply,
			"timestamp": resp.Timestamp,
		},
	})
}

// GetHistory handles GET /api/chat/history/:sessionId.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session ID is required", "")
		return
	}

	turns, err := h.Convos.GetTurns(sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Conversation not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"sessionId": sessionID,
			"messages":  turns,
		},
	})
}

// GetActiveConversations handles GET /api/chat/conversations.
func (h *ChatHandler) GetActiveConversations(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		limit = 50
	}

	convs, err := h.Convos.GetActive(limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list conversations", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": convs})
}

// EndConversation handles DELETE /api/chat/conversation/:sessionId.
func (h *ChatHandler) EndConversation(c *gin.Context) {
	sessionID := c.Param("sessionId")

	if err := h.Convos.Deactivate(sessionID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Conversation not found", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Conversation ended successfully"})
}
