package handlers

import (
	"net/http"

	"serviify-backend/models"
	"serviify-backend/services"

	"github.com/gin-gonic/gin"
)

type BotHandler struct {
	botService *services.BotService
}

// NewBotHandler creates a new bot handler
func NewBotHandler(bs *services.BotService) *BotHandler {
	return &BotHandler{botService: bs}
}

// PostMessage sends one user message to the bot and returns the reply
// POST /api/bot/message
func (h *BotHandler) PostMessage(c *gin.Context) {
	var req models.BotMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	resp, err := h.botService.HandleMessage(c.Request.Context(), currentUserID(c), req.Text)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMessages returns the chat transcript for the caller
// GET /api/bot/messages
func (h *BotHandler) GetMessages(c *gin.Context) {
	messages, err := h.botService.Messages(currentUserID(c))
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}
