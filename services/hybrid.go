package services

// Pure score-combination logic for the two hybrid strategies. Keeping
// these free of database access lets the combiner rules be tested
// deterministically.

// Profile-weighted combination (primary, real-time path). The weights
// intentionally do not sum to 1: the tag signal dominates.
const (
	WeightTagScore      = 0.6
	WeightContentScore  = 0.4
	WeightCollabScore   = 0.3
	WeightLocationScore = 0.1

	// Reduced variant used when collaborative/content signals are
	// unavailable.
	FallbackTagWeight      = 0.9
	FallbackLocationWeight = 0.1
)

// ProfileWeightedScore blends the four real-time signals.
func ProfileWeightedScore(tagScore, contentScore, collabScore, locationScore float64) float64 {
	return tagScore*WeightTagScore +
		contentScore*WeightContentScore +
		collabScore*WeightCollabScore +
		locationScore*WeightLocationScore
}

// ProfileLocationScore is the degraded variant: tag profile plus
// proximity only.
func ProfileLocationScore(tagScore, locationScore float64) float64 {
	return tagScore*FallbackTagWeight + locationScore*FallbackLocationWeight
}

// HybridWeights are the classic combiner's fixed per-signal weights.
type HybridWeights struct {
	Collaborative float64
	Content       float64
	Location      float64
	Popularity    float64
}

// DefaultHybridWeights matches the classic hybrid path. Popularity is
// part of the sum; see DESIGN.md for the decision record.
var DefaultHybridWeights = HybridWeights{
	Collaborative: 0.3,
	Content:       0.4,
	Location:      0.1,
	Popularity:    0.1,
}

// SignalSet carries the per-service scores of each engine, already
// normalized to [0, 1] by the caller.
type SignalSet struct {
	Collaborative map[string]float64
	Content       map[string]float64
	Location      map[string]float64
	Popularity    map[string]float64
}

// CombineSignals merges normalized engine scores with fixed weights,
// excluding services the user has already booked.
func CombineSignals(signals SignalSet, weights HybridWeights, booked map[string]bool) map[string]float64 {
	ids := make(map[string]bool)
	for _, m := range []map[string]float64{
		signals.Collaborative, signals.Content, signals.Location, signals.Popularity,
	} {
		for id := range m {
			ids[id] = true
		}
	}

	combined := make(map[string]float64, len(ids))
	for id := range ids {
		if booked[id] {
			continue
		}
		combined[id] = signals.Collaborative[id]*weights.Collaborative +
			signals.Content[id]*weights.Content +
			signals.Location[id]*weights.Location +
			signals.Popularity[id]*weights.Popularity
	}
	return combined
}

// Injection bonuses for catalog-wide discoverability entries. The
// bonus doubles or triples when the service's tags overlap the user's
// profile tags.
const (
	CollabInjectionWeight = 0.1
	StarredBonusBase      = 0.05
	StarredBonusOverlap   = 0.15
	ReviewedBonusBase     = 0.02
	ReviewedBonusOverlap  = 0.08
	MaxInjectedPerSource  = 3
)

// RatedService is the slim view the injection rules need.
type RatedService struct {
	ID          string
	AvgRating   float64
	ReviewCount int
	Tags        []string
}

// InjectCollaborativeOnly adds up to MaxInjectedPerSource services
// that only the collaborative engine surfaced, at a low weight, so the
// collaborative signal stays visible even when dominated.
func InjectCollaborativeOnly(combined, collaborative map[string]float64, booked map[string]bool, topIDs []string) {
	injected := 0
	for _, id := range topIDs {
		if injected >= MaxInjectedPerSource {
			return
		}
		if _, present := combined[id]; present || booked[id] {
			continue
		}
		combined[id] = collaborative[id] * CollabInjectionWeight
		injected++
	}
}

// InjectTopRated adds best-starred catalog services not already
// present, scoring avgRating times the (possibly overlap-raised) bonus.
func InjectTopRated(combined map[string]float64, topRated []RatedService, booked, profileTags map[string]bool) {
	injected := 0
	for _, svc := range topRated {
		if injected >= MaxInjectedPerSource {
			return
		}
		if _, present := combined[svc.ID]; present || booked[svc.ID] {
			continue
		}
		bonus := StarredBonusBase
		if tagsOverlap(svc.Tags, profileTags) {
			bonus = StarredBonusOverlap
		}
		combined[svc.ID] = svc.AvgRating * bonus
		injected++
	}
}

// InjectMostReviewed adds most-reviewed catalog services not already
// present, scoring reviewCount times the bonus.
func InjectMostReviewed(combined map[string]float64, mostReviewed []RatedService, booked, profileTags map[string]bool) {
	injected := 0
	for _, svc := range mostReviewed {
		if injected >= MaxInjectedPerSource {
			return
		}
		if _, present := combined[svc.ID]; present || booked[svc.ID] {
			continue
		}
		bonus := ReviewedBonusBase
		if tagsOverlap(svc.Tags, profileTags) {
			bonus = ReviewedBonusOverlap
		}
		combined[svc.ID] = float64(svc.ReviewCount) * bonus
		injected++
	}
}

func tagsOverlap(tags []string, profileTags map[string]bool) bool {
	for _, tag := range tags {
		if profileTags[tag] {
			return true
		}
	}
	return false
}
