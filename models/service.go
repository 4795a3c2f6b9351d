package models

import (
	"strings"
	"time"
)

// Service represents a bookable home service in the catalog.
// This is the core domain model with GORM tags for database operations.
type Service struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index:idx_title" json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Category    string    `gorm:"index:idx_category" json:"category"`
	ProviderID  string    `gorm:"index:idx_provider" json:"provider_id"`
	Provider    string    `json:"provider"`
	Latitude    float64   `gorm:"index:idx_location" json:"latitude"`
	Longitude   float64   `gorm:"index:idx_location" json:"longitude"`
	Tags        string    `json:"-"` // comma-joined, ordered, capped at 15
	AvgRating   float64   `gorm:"index:idx_rating" json:"avg_rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Distance    float64   `gorm:"-" json:"distance,omitempty"` // Computed, not stored
}

// TagList splits the stored tag column into its ordered members.
func (s *Service) TagList() []string {
	if s.Tags == "" {
		return nil
	}
	return strings.Split(s.Tags, ",")
}

// SetTagList stores an ordered tag sequence on the service.
func (s *Service) SetTagList(tags []string) {
	s.Tags = strings.Join(tags, ",")
}

// ServiceResponse represents the API response structure.
type ServiceResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Provider    string   `json:"provider"`
	Tags        []string `json:"tags"`
	AvgRating   float64  `json:"avg_rating"`
	ReviewCount int      `json:"review_count"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Distance    float64  `json:"distance,omitempty"`
	Score       float64  `json:"score"`
}

// ToResponse converts a Service to ServiceResponse with an attached score.
func (s *Service) ToResponse(score float64) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    s.Category,
		Provider:    s.Provider,
		Tags:        s.TagList(),
		AvgRating:   s.AvgRating,
		ReviewCount: s.ReviewCount,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Distance:    s.Distance,
		Score:       score,
	}
}

// Locatable interface implementation for distance helpers

func (s Service) GetID() string         { return s.ID }
func (s Service) GetLatitude() float64  { return s.Latitude }
func (s Service) GetLongitude() float64 { return s.Longitude }
func (s Service) GetDistance() float64  { return s.Distance }
func (s *Service) SetDistance(d float64) {
	s.Distance = d
}

// Review is a customer rating for a service. The recommender reads the
// aggregate (count, average) for the popularity signal.
type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ServiceID string    `gorm:"index:idx_service_reviews" json:"service_id"`
	UserID    string    `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking links a customer to a service. The classic hybrid path
// excludes already-booked services from results.
type Booking struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CustomerID string    `gorm:"index:idx_customer_bookings" json:"customer_id"`
	ServiceID  string    `gorm:"index:idx_service_bookings" json:"service_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
