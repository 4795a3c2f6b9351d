package models

import (
	"time"
)

// Interaction records a user action against a service. Rows are
// append-only; the bot_chat type carries no service reference.
type Interaction struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_user_interactions" json:"user_id"`
	ServiceID string    `gorm:"index:idx_service_interactions" json:"service_id"`
	Type      string    `gorm:"index:idx_interaction_type" json:"type"` // "view", "click", "booking", "bot_chat"
	Timestamp time.Time `gorm:"index:idx_interaction_ts" json:"timestamp"`
}

// Interaction type constants
const (
	InteractionView    = "view"
	InteractionClick   = "click"
	InteractionBooking = "booking"
	InteractionBotChat = "bot_chat"
)

// BotChatServiceID is the sentinel service reference for chat-derived
// interactions; no catalog lookup happens for it.
const BotChatServiceID = "bot-chat"

// InteractionWeight returns the similarity weight used by the
// collaborative engine.
func InteractionWeight(interactionType string) float64 {
	switch interactionType {
	case InteractionView:
		return 0.3
	case InteractionClick:
		return 0.6
	case InteractionBooking:
		return 1.0
	default:
		return 0
	}
}

// BoostMagnitudes returns the (service, tag) profile boosts applied
// when an interaction of the given type is recorded.
func BoostMagnitudes(interactionType string) (serviceBoost, tagBoost float64) {
	switch interactionType {
	case InteractionView:
		return 3, 1
	case InteractionClick:
		return 6, 2
	case InteractionBooking:
		return 10, 4
	default:
		return 0, 0
	}
}

// SourceBoost returns the per-tag boost for the standalone
// profile-update operation, keyed by the stream that produced the tags.
func SourceBoost(source string) (float64, bool) {
	switch source {
	case "bot":
		return 1.0, true
	case "content":
		return 0.5, true
	case "collab":
		return 0.4, true
	default:
		return 0, false
	}
}

// ValidInteractionType reports whether the type is accepted by the
// service-interaction endpoint (bot_chat has its own path).
func ValidInteractionType(t string) bool {
	return t == InteractionView || t == InteractionClick || t == InteractionBooking
}

// BotMessage is one chatbot transcript line.
type BotMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_user_bot_messages" json:"user_id"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
