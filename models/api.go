package models

// RecommendationRequest carries the query parameters of the main
// recommendation endpoint.
type RecommendationRequest struct {
	Latitude  float64 `json:"lat" form:"lat"`
	Longitude float64 `json:"lng" form:"lng"`
	Page      int     `json:"page" form:"page"`
	Limit     int     `json:"limit" form:"limit"`
}

// ProfileTagsRequest is the body of the profile-tags endpoint: the
// caller supplies its own mirror profile instead of the stored one.
type ProfileTagsRequest struct {
	Profile   TagProfile `json:"profile"`
	Latitude  float64    `json:"lat"`
	Longitude float64    `json:"lng"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}

// ExtractTagsRequest wraps free text for the tag extraction endpoint.
type ExtractTagsRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateProfileRequest incrementally reinforces the stored profile.
type UpdateProfileRequest struct {
	NewTags []string `json:"newTags"`
	Source  string   `json:"source"` // "bot", "content", "collab"
}

// ReplaceProfileRequest replaces the stored profile wholesale
// (reconciliation push from the client mirror).
type ReplaceProfileRequest struct {
	Profile TagProfile `json:"profile"`
}

// InteractionRequest is the body of the interaction endpoint.
type InteractionRequest struct {
	InteractionType string     `json:"interactionType" binding:"required"`
	Tags            []string   `json:"tags,omitempty"`          // bot_chat only
	BotTagProfile   TagProfile `json:"botTagProfile,omitempty"` // bot_chat only
}

// BotMessageRequest posts one user message to the chatbot.
type BotMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// BotMessageResponse returns the bot reply with the tags extracted
// from it, so the client can feed its mirror profile.
type BotMessageResponse struct {
	Reply string   `json:"reply"`
	Tags  []string `json:"tags"`
}

// Pagination describes the slice of the ranked list being returned.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// RecommendationResponse is the ranked, paginated result shape.
type RecommendationResponse struct {
	Success    bool              `json:"success"`
	Data       []ServiceResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ServiceRequest creates or updates a catalog service; tags are
// regenerated server-side, never accepted from the caller.
type ServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Provider    string  `json:"provider"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
