package handlers

import (
	"net/http"

	"serviify-backend/config"
	"serviify-backend/models"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// =============================================================================
// Response Helpers
// =============================================================================

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, code int, error, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 error response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Invalid request", message)
}

// respondMissingParam sends a 400 error for missing parameters
func respondMissingParam(c *gin.Context, param string) {
	respondWithError(c, http.StatusBadRequest, "Missing parameter", param+" is required")
}

// respondInternalError sends a 500 error response
func respondInternalError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Internal error", message)
}

// respondNotFound sends a 404 error response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not found", message)
}

// =============================================================================
// Auth Middleware
// =============================================================================

// RequireUser reads the caller identity from the X-User-ID header.
// Full authentication lives in the gateway; this layer only needs to
// know which profile the request belongs to.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			respondWithError(c, http.StatusUnauthorized, "Unauthorized", "X-User-ID header is required")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// =============================================================================
// Pagination Helpers
// =============================================================================

// clampPagination normalizes page/limit against the configured bounds.
func clampPagination(page, limit int, cfg *config.Config) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = cfg.DefaultPageSize
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}
	return page, limit
}
