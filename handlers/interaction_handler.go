package handlers

import (
	"net/http"

	"serviify-backend/models"
	"serviify-backend/services"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	profileService *services.ProfileService
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(ps *services.ProfileService) *InteractionHandler {
	return &InteractionHandler{profileService: ps}
}

// RecordInteraction records a view/click/booking against a service
// POST /api/interactions/:serviceId
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	serviceID := c.Param("serviceId")
	if serviceID == "" {
		respondMissingParam(c, "serviceId")
		return
	}

	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !models.ValidInteractionType(req.InteractionType) {
		respondBadRequest(c, "interactionType must be view, click or booking")
		return
	}

	if err := h.profileService.RecordInteraction(currentUserID(c), serviceID, req.InteractionType); err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RecordBotChat records a chat-derived profile update
// POST /api/interactions/bot-chat
func (h *InteractionHandler) RecordBotChat(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.InteractionType != models.InteractionBotChat {
		respondBadRequest(c, "interactionType must be bot_chat")
		return
	}
	if req.BotTagProfile != nil {
		if err := req.BotTagProfile.Validate(); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	if err := h.profileService.RecordBotChat(currentUserID(c), req.Tags, req.BotTagProfile); err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
