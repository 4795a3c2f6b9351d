package handlers

import (
	"net/http"

	"serviify-backend/config"
	"serviify-backend/models"
	"serviify-backend/services"
	"serviify-backend/tagger"
	"serviify-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
	profileService        *services.ProfileService
	cfg                   *config.Config
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(rs *services.RecommendationService, ps *services.ProfileService, cfg *config.Config) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: rs,
		profileService:        ps,
		cfg:                   cfg,
	}
}

// GetRecommendations returns the personalized hybrid feed
// GET /api/recommendations?lat=...&lng=...&page=...&limit=...
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if c.Query("lat") == "" || c.Query("lng") == "" {
		respondMissingParam(c, "lat/lng")
		return
	}
	if err := utils.ValidateLocation(req.Latitude, req.Longitude); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ranked, err := h.recommendationService.Recommend(c.Request.Context(), currentUserID(c), req.Latitude, req.Longitude)
	if err != nil {
		respondInternalError(c, "failed to generate recommendations")
		return
	}

	h.respondPaginated(c, ranked, req.Latitude, req.Longitude, req.Page, req.Limit)
}

// GetProfileTagRecommendations ranks the catalog against a
// caller-supplied tag profile (the client-mirrored profile flow)
// POST /api/recommendations/profile-tags
func (h *RecommendationHandler) GetProfileTagRecommendations(c *gin.Context) {
	var req models.ProfileTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.Latitude == 0 || req.Longitude == 0 {
		respondMissingParam(c, "lat/lng")
		return
	}
	if err := utils.ValidateLocation(req.Latitude, req.Longitude); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.Profile == nil {
		req.Profile = models.TagProfile{}
	}
	if err := req.Profile.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ranked, err := h.recommendationService.RecommendWithProfile(req.Profile, req.Latitude, req.Longitude)
	if err != nil {
		// Reduced ranking still beats an empty feed.
		ranked, err = h.recommendationService.RecommendProfileLocation(req.Profile, req.Latitude, req.Longitude)
		if err != nil {
			respondInternalError(c, "failed to generate recommendations")
			return
		}
	}

	h.respondPaginated(c, ranked, req.Latitude, req.Longitude, req.Page, req.Limit)
}

// ExtractTags exposes the tag extractor as a standalone endpoint
// POST /api/recommendations/extract-tags
func (h *RecommendationHandler) ExtractTags(c *gin.Context) {
	var req models.ExtractTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// Free text goes through the full extractor (stems, synonyms,
	// context words), not just the query-side bucket expansion.
	c.JSON(http.StatusOK, gin.H{"tags": tagger.GenerateTags(req.Text, req.Text, "")})
}

// GetProfile returns the stored tag profile
// GET /api/recommendations/profile
func (h *RecommendationHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(currentUserID(c))
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ReplaceProfile overwrites the stored tag profile
// POST /api/recommendations/replace-profile
func (h *RecommendationHandler) ReplaceProfile(c *gin.Context) {
	var req models.ReplaceProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if len(req.Profile) == 0 {
		respondBadRequest(c, "profile must not be empty")
		return
	}

	if err := h.profileService.ReplaceProfile(currentUserID(c), req.Profile); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateProfile incrementally reinforces the stored tag profile
// POST /api/recommendations/update-profile
func (h *RecommendationHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if len(req.NewTags) == 0 {
		respondMissingParam(c, "newTags")
		return
	}

	profile, err := h.profileService.UpdateProfile(currentUserID(c), req.NewTags, req.Source)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *RecommendationHandler) respondPaginated(c *gin.Context, ranked []services.ScoredService, lat, lng float64, page, limit int) {
	page, limit = clampPagination(page, limit, h.cfg)
	pageSlice, pagination := services.Paginate(ranked, page, limit)

	data, err := h.recommendationService.HydrateServices(pageSlice, lat, lng)
	if err != nil {
		respondInternalError(c, "failed to generate recommendations")
		return
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}
