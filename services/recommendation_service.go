package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"serviify-backend/config"
	"serviify-backend/database"
	"serviify-backend/models"
	"serviify-backend/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type RecommendationService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(cfg *config.Config) *RecommendationService {
	return &RecommendationService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// ScoredService pairs a service ID with its ranking score.
type ScoredService struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Recommend runs the classic hybrid path for a stored user: the four
// engines fan out concurrently, each failure degrades to an empty
// signal, and the combined list gets the discoverability injections.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, lat, lng float64) ([]ScoredService, error) {
	var (
		collab, content, location, popularity map[string]float64
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if collab, err = collaborativeScores(s.db, userID); err != nil {
			log.Printf("collaborative engine failed: %v", err)
			collab = map[string]float64{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if content, err = contentScores(s.db, userID); err != nil {
			log.Printf("content engine failed: %v", err)
			content = map[string]float64{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if location, err = locationScores(s.db, lat, lng, s.cfg.MaxRadiusKm); err != nil {
			log.Printf("location engine failed: %v", err)
			location = map[string]float64{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if popularity, err = popularityScores(s.db); err != nil {
			log.Printf("popularity engine failed: %v", err)
			popularity = map[string]float64{}
		}
		return nil
	})
	_ = g.Wait() // engines never propagate errors

	booked, err := s.bookedServices(userID)
	if err != nil {
		return nil, err
	}

	collabNorm := utils.NormalizeByMax(collab)
	signals := SignalSet{
		Collaborative: collabNorm,
		Content:       utils.NormalizeByMax(content),
		Location:      location, // already in (0, 1]
		Popularity:    popularity,
	}
	combined := CombineSignals(signals, DefaultHybridWeights, booked)

	InjectCollaborativeOnly(combined, collabNorm, booked, utils.TopNByScore(collabNorm, len(collabNorm)))

	profileTags, err := s.profileTagSet(userID)
	if err != nil {
		log.Printf("profile lookup failed, injecting without overlap bonus: %v", err)
		profileTags = map[string]bool{}
	}
	topRated, mostReviewed, err := s.catalogHighlights()
	if err != nil {
		log.Printf("catalog highlights failed, skipping injection: %v", err)
	} else {
		InjectTopRated(combined, topRated, booked, profileTags)
		InjectMostReviewed(combined, mostReviewed, booked, profileTags)
	}

	ranked := sortScores(combined)
	if len(ranked) == 0 {
		return s.locationFallback(lat, lng)
	}
	return ranked, nil
}

// RecommendWithProfile runs the profile-weighted primary path against
// a caller-supplied tag profile: the dominant fuzzy tag signal plus
// content cosine, collaborative overlap, and proximity.
func (s *RecommendationService) RecommendWithProfile(profile models.TagProfile, lat, lng float64) ([]ScoredService, error) {
	var catalog []models.Service
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	profileDoc := utils.ProfileDocument(profile)
	scores := make(map[string]float64, len(catalog))
	for i := range catalog {
		svc := &catalog[i]
		tags := svc.TagList()

		tagScore := utils.TagProfileScore(profile, tags)
		contentScore := utils.CosineSimilarity(profileDoc, serviceDocument(svc))
		collabScore := utils.TagOverlapScore(profile, tags)
		distance := utils.HaversineDistance(lat, lng, svc.Latitude, svc.Longitude)
		locationScore := utils.LocationScore(distance)

		scores[svc.ID] = ProfileWeightedScore(tagScore, contentScore, collabScore, locationScore)
	}

	return sortScores(scores), nil
}

// RecommendProfileLocation is the reduced variant used when the
// content and collaborative signals are unavailable.
func (s *RecommendationService) RecommendProfileLocation(profile models.TagProfile, lat, lng float64) ([]ScoredService, error) {
	var catalog []models.Service
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	scores := make(map[string]float64, len(catalog))
	for i := range catalog {
		svc := &catalog[i]
		tagScore := utils.TagProfileScore(profile, svc.TagList())
		distance := utils.HaversineDistance(lat, lng, svc.Latitude, svc.Longitude)
		scores[svc.ID] = ProfileLocationScore(tagScore, utils.LocationScore(distance))
	}
	return sortScores(scores), nil
}

// HydrateServices fetches full service rows for one page of scored
// results, preserving rank order and attaching scores and distances.
func (s *RecommendationService) HydrateServices(page []ScoredService, lat, lng float64) ([]models.ServiceResponse, error) {
	if len(page) == 0 {
		return []models.ServiceResponse{}, nil
	}

	ids := make([]string, len(page))
	scores := make(map[string]float64, len(page))
	for i, r := range page {
		ids[i] = r.ID
		scores[r.ID] = r.Score
	}

	var services []models.Service
	if err := s.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	byID := make(map[string]*models.Service, len(services))
	for i := range services {
		byID[services[i].ID] = &services[i]
	}

	responses := make([]models.ServiceResponse, 0, len(page))
	for _, r := range page {
		svc, ok := byID[r.ID]
		if !ok {
			continue
		}
		svc.Distance = utils.HaversineDistance(lat, lng, svc.Latitude, svc.Longitude)
		responses = append(responses, svc.ToResponse(r.Score))
	}
	return responses, nil
}

// Paginate slices a ranked list into one page.
func Paginate(ranked []ScoredService, page, limit int) ([]ScoredService, models.Pagination) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	end := page * limit
	if start > len(ranked) {
		start = len(ranked)
	}
	if end > len(ranked) {
		end = len(ranked)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (len(ranked) + limit - 1) / limit
	}
	return ranked[start:end], models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      len(ranked),
		TotalPages: totalPages,
	}
}

// locationFallback ranks nearby services purely by proximity when the
// hybrid produced nothing; as a last resort it returns the first ten
// catalog entries with decreasing scores.
func (s *RecommendationService) locationFallback(lat, lng float64) ([]ScoredService, error) {
	var catalog []models.Service
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch fallback services: %w", err)
	}

	nearby := utils.FilterByDistance[models.Service](catalog, lat, lng, s.cfg.MaxRadiusKm)
	if len(nearby) > 0 {
		utils.SortByDistanceFrom[models.Service](nearby, lat, lng)
		ranked := make([]ScoredService, len(nearby))
		for i := range nearby {
			ranked[i] = ScoredService{ID: nearby[i].ID, Score: utils.LocationScore(nearby[i].Distance)}
		}
		return ranked, nil
	}

	limit := 10
	if len(catalog) < limit {
		limit = len(catalog)
	}
	ranked := make([]ScoredService, limit)
	for i := 0; i < limit; i++ {
		ranked[i] = ScoredService{ID: catalog[i].ID, Score: 1 - float64(i)*0.1}
	}
	return ranked, nil
}

func (s *RecommendationService) bookedServices(userID string) (map[string]bool, error) {
	var bookings []models.Booking
	if err := s.db.Where("customer_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked[b.ServiceID] = true
	}
	return booked, nil
}

func (s *RecommendationService) profileTagSet(userID string) (map[string]bool, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	tags := make(map[string]bool, len(user.TagProfile))
	for tag := range user.TagProfile {
		tags[tag] = true
	}
	return tags, nil
}

// catalogHighlights returns the top-rated and most-reviewed services
// for the injection rules.
func (s *RecommendationService) catalogHighlights() (topRated, mostReviewed []RatedService, err error) {
	var byRating []models.Service
	if err = s.db.Order("avg_rating DESC").Limit(MaxInjectedPerSource).Find(&byRating).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch top-rated services: %w", err)
	}
	var byReviews []models.Service
	if err = s.db.Order("review_count DESC").Limit(MaxInjectedPerSource).Find(&byReviews).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch most-reviewed services: %w", err)
	}

	for i := range byRating {
		topRated = append(topRated, toRatedService(&byRating[i]))
	}
	for i := range byReviews {
		mostReviewed = append(mostReviewed, toRatedService(&byReviews[i]))
	}
	return topRated, mostReviewed, nil
}

func toRatedService(s *models.Service) RatedService {
	return RatedService{
		ID:          s.ID,
		AvgRating:   s.AvgRating,
		ReviewCount: s.ReviewCount,
		Tags:        s.TagList(),
	}
}

// sortScores turns a score map into a descending ranked list; ties
// break lexicographically by ID so the order is deterministic.
func sortScores(scores map[string]float64) []ScoredService {
	ranked := make([]ScoredService, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, ScoredService{ID: id, Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
