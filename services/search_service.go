package services

import (
	"fmt"
	"strings"

	"serviify-backend/database"
	"serviify-backend/models"
	"serviify-backend/tagger"
	"serviify-backend/utils"

	"github.com/agnivade/levenshtein"
	"gorm.io/gorm"
)

// Search signal weights, strongest match first.
const (
	searchWeightExactTag      = 10.0
	searchWeightTagPrefix     = 8.0
	searchWeightProviderSub   = 7.0
	searchWeightProviderPre   = 6.0
	searchWeightCategorySub   = 5.0
	searchWeightTitleSub      = 4.0
	searchWeightPartialTag    = 3.0
	searchWeightDescSub       = 2.0
	searchWeightFuzzyToken    = 1.0
	searchBonusHighlyRated    = 1.0
	searchHighlyRatedCutoff   = 4.0
	searchFuzzyTokenMaxDist   = 2
	searchPartialTagMinLength = 3
)

// SearchService ranks the catalog against explicit search-bar queries.
// This path is separate from the personalized recommendation feed.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService() *SearchService {
	return &SearchService{db: database.GetDB()}
}

// Search expands the query into candidate tags, scores every catalog
// service by summed match signals, drops zero scores and returns the
// rest sorted by score descending.
func (s *SearchService) Search(query string) ([]models.ServiceResponse, error) {
	var catalog []models.Service
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	queryLower := strings.ToLower(strings.TrimSpace(query))
	queryTags := tagger.ExtractQueryTags(query)
	queryTokens := tagger.Tokenize(query)

	matched := make([]models.Service, 0, len(catalog))
	scores := make(map[string]float64, len(catalog))
	for i := range catalog {
		if score := scoreServiceMatch(&catalog[i], queryLower, queryTags, queryTokens); score > 0 {
			matched = append(matched, catalog[i])
			scores[catalog[i].ID] = score
		}
	}

	utils.SortByScoreMap(matched, scores, utils.Descending)

	results := make([]models.ServiceResponse, len(matched))
	for i := range matched {
		results[i] = matched[i].ToResponse(scores[matched[i].ID])
	}
	return results, nil
}

func scoreServiceMatch(svc *models.Service, queryLower string, queryTags, queryTokens []string) float64 {
	serviceTags := svc.TagList()
	providerLower := strings.ToLower(svc.Provider)
	categoryLower := strings.ToLower(svc.Category)
	titleLower := strings.ToLower(svc.Title)
	descLower := strings.ToLower(svc.Description)

	var score float64
	for _, qt := range queryTags {
		score += scoreTagMatch(qt, serviceTags)
	}

	if queryLower != "" {
		if strings.Contains(providerLower, queryLower) {
			score += searchWeightProviderSub
		}
		if strings.HasPrefix(providerLower, queryLower) {
			score += searchWeightProviderPre
		}
		if strings.Contains(categoryLower, queryLower) {
			score += searchWeightCategorySub
		}
		if strings.Contains(titleLower, queryLower) {
			score += searchWeightTitleSub
		}
		if strings.Contains(descLower, queryLower) {
			score += searchWeightDescSub
		}
	}

	for _, token := range queryTokens {
		if fuzzyTokenInTags(token, serviceTags) {
			score += searchWeightFuzzyToken
		}
	}

	if score > 0 && svc.AvgRating >= searchHighlyRatedCutoff {
		score += searchBonusHighlyRated
	}
	return score
}

// scoreTagMatch awards the single strongest tag signal for one
// candidate tag: exact, then prefix either way, then partial overlap.
func scoreTagMatch(queryTag string, serviceTags []string) float64 {
	best := 0.0
	for _, st := range serviceTags {
		switch {
		case st == queryTag:
			return searchWeightExactTag
		case strings.HasPrefix(st, queryTag) || strings.HasPrefix(queryTag, st):
			if best < searchWeightTagPrefix {
				best = searchWeightTagPrefix
			}
		case len(queryTag) >= searchPartialTagMinLength &&
			(strings.Contains(st, queryTag) || strings.Contains(queryTag, st)):
			if best < searchWeightPartialTag {
				best = searchWeightPartialTag
			}
		}
	}
	return best
}

func fuzzyTokenInTags(token string, serviceTags []string) bool {
	for _, st := range serviceTags {
		if levenshtein.ComputeDistance(token, st) <= searchFuzzyTokenMaxDist {
			return true
		}
	}
	return false
}
