package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// =============================================================================
// Fuzzy Tag Matching
// =============================================================================

// Edit-distance tiers for fuzzy tag matching: an exact match keeps the
// full profile weight, one edit keeps 70%, two edits keep 40%, anything
// farther contributes nothing.
const (
	FuzzyExactMultiplier = 1.0
	FuzzyCloseMultiplier = 0.7
	FuzzyFarMultiplier   = 0.4
)

// FuzzyMatchMultiplier returns the weight multiplier for a profile tag
// against a service tag, based on their Levenshtein distance.
func FuzzyMatchMultiplier(profileTag, serviceTag string) float64 {
	switch levenshtein.ComputeDistance(profileTag, serviceTag) {
	case 0:
		return FuzzyExactMultiplier
	case 1:
		return FuzzyCloseMultiplier
	case 2:
		return FuzzyFarMultiplier
	default:
		return 0
	}
}

// TagProfileScore sums, for every tag in the profile, the profile
// weight scaled by the best fuzzy-match tier against the service's
// tags. This is the dominant real-time recommendation signal.
func TagProfileScore(profile map[string]float64, serviceTags []string) float64 {
	if len(profile) == 0 || len(serviceTags) == 0 {
		return 0
	}

	normalized := make([]string, len(serviceTags))
	for i, tag := range serviceTags {
		normalized[i] = strings.ToLower(strings.TrimSpace(tag))
	}

	score := 0.0
	for profileTag, weight := range profile {
		pt := strings.ToLower(strings.TrimSpace(profileTag))
		best := 0.0
		for _, serviceTag := range normalized {
			if m := FuzzyMatchMultiplier(pt, serviceTag); m > best {
				best = m
				if best == FuzzyExactMultiplier {
					break
				}
			}
		}
		score += weight * best
	}
	return score
}

// TagOverlapScore is the collaborative heuristic used on the real-time
// path: the count of profile tags that substring-overlap a service
// tag, normalized by the service's tag count.
func TagOverlapScore(profile map[string]float64, serviceTags []string) float64 {
	if len(serviceTags) == 0 {
		return 0
	}
	overlap := 0
	for profileTag := range profile {
		pt := strings.ToLower(profileTag)
		for _, serviceTag := range serviceTags {
			st := strings.ToLower(serviceTag)
			if strings.Contains(st, pt) || strings.Contains(pt, st) {
				overlap++
			}
		}
	}
	return float64(overlap) / float64(len(serviceTags))
}
