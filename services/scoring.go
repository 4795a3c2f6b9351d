package services

import (
	"fmt"
	"strings"

	"serviify-backend/models"
	"serviify-backend/tagger"
	"serviify-backend/utils"

	"gorm.io/gorm"
)

// The four scoring engines. Each is a pure function of the persisted
// state: it re-reads what it needs from the store, never mutates
// anything, and an empty result is a valid outcome, not an error.

// collaborativeScores finds users sharing at least one interacted
// service with the target user, ranks them by weighted interaction
// similarity, and aggregates the other services those similar users
// touched.
func collaborativeScores(db *gorm.DB, userID string) (map[string]float64, error) {
	var userInteractions []models.Interaction
	if err := db.Where("user_id = ? AND service_id <> ?", userID, models.BotChatServiceID).Find(&userInteractions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user interactions: %w", err)
	}
	if len(userInteractions) == 0 {
		return map[string]float64{}, nil
	}

	userServices := make(map[string]bool)
	for _, in := range userInteractions {
		userServices[in.ServiceID] = true
	}
	serviceIDs := make([]string, 0, len(userServices))
	for id := range userServices {
		serviceIDs = append(serviceIDs, id)
	}

	var overlapping []models.Interaction
	err := db.Where("service_id IN ? AND user_id <> ?", serviceIDs, userID).Find(&overlapping).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping interactions: %w", err)
	}

	similarity := make(map[string]float64)
	for _, in := range overlapping {
		similarity[in.UserID] += models.InteractionWeight(in.Type)
	}
	if len(similarity) == 0 {
		return map[string]float64{}, nil
	}

	similarUsers := utils.TopNByScore(similarity, maxSimilarUsers)

	var theirInteractions []models.Interaction
	err = db.Where("user_id IN ? AND service_id <> ?", similarUsers, models.BotChatServiceID).Find(&theirInteractions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch similar-user interactions: %w", err)
	}

	scores := make(map[string]float64)
	for _, in := range theirInteractions {
		if userServices[in.ServiceID] {
			continue
		}
		scores[in.ServiceID] += models.InteractionWeight(in.Type)
	}
	return scores, nil
}

// maxSimilarUsers bounds the collaborative neighborhood.
const maxSimilarUsers = 5

// contentScores builds a TF-IDF corpus from the services the user
// interacted with and scores every catalog service by the summed
// corpus weight of its shared tokens.
func contentScores(db *gorm.DB, userID string) (map[string]float64, error) {
	var interactions []models.Interaction
	if err := db.Where("user_id = ? AND service_id <> ?", userID, models.BotChatServiceID).Find(&interactions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}
	if len(interactions) == 0 {
		return map[string]float64{}, nil
	}

	seen := make(map[string]bool)
	var historyIDs []string
	for _, in := range interactions {
		if !seen[in.ServiceID] {
			seen[in.ServiceID] = true
			historyIDs = append(historyIDs, in.ServiceID)
		}
	}

	var history []models.Service
	if err := db.Where("id IN ?", historyIDs).Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history services: %w", err)
	}
	if len(history) == 0 {
		return map[string]float64{}, nil
	}

	docs := make([][]string, len(history))
	for i := range history {
		docs[i] = serviceDocument(&history[i])
	}
	corpus := utils.NewCorpus(docs)

	var catalog []models.Service
	if err := db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	// Every catalog service is scored, including the ones already in
	// the user's history; the booked-exclusion happens downstream.
	scores := make(map[string]float64)
	for i := range catalog {
		if s := corpus.ScoreTokens(serviceDocument(&catalog[i])); s > 0 {
			scores[catalog[i].ID] = s
		}
	}
	return scores, nil
}

// locationScores returns 1/(distance+1) for every service within the
// radius of the given point.
func locationScores(db *gorm.DB, lat, lng, radiusKm float64) (map[string]float64, error) {
	var catalog []models.Service
	if err := db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	nearby := utils.FilterByDistance[models.Service](catalog, lat, lng, radiusKm)
	scores := make(map[string]float64, len(nearby))
	for i := range nearby {
		scores[nearby[i].ID] = utils.LocationScore(nearby[i].Distance)
	}
	return scores, nil
}

// popularityScores normalizes per-service review counts by the catalog
// maximum; services with no reviews score zero.
func popularityScores(db *gorm.DB) (map[string]float64, error) {
	type reviewCount struct {
		ServiceID string
		Count     int
	}
	var counts []reviewCount
	err := db.Model(&models.Review{}).
		Select("service_id, count(*) as count").
		Group("service_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	maxCount := 0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	if maxCount == 0 {
		return map[string]float64{}, nil
	}

	scores := make(map[string]float64, len(counts))
	for _, c := range counts {
		scores[c.ServiceID] = float64(c.Count) / float64(maxCount)
	}
	return scores, nil
}

// serviceDocument tokenizes a service into its scoring document:
// title tokens, tags, and category name.
func serviceDocument(s *models.Service) []string {
	doc := tagger.Tokenize(s.Title)
	for _, tag := range s.TagList() {
		doc = append(doc, strings.ToLower(tag))
	}
	if s.Category != "" {
		doc = append(doc, strings.ToLower(s.Category))
	}
	return doc
}
