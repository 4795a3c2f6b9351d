package utils

import (
	"sort"
)

// SortOrder defines the direction of sorting
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Identifiable is anything with a stable string ID for score lookups.
type Identifiable interface {
	GetID() string
}

// DistanceSortable extends Identifiable with location data for
// distance-based helpers.
type DistanceSortable interface {
	Identifiable
	GetLatitude() float64
	GetLongitude() float64
	GetDistance() float64
	SetDistance(float64)
}

// SortByScoreMap sorts items using a precomputed score map. The sort
// is stable: ties retain their prior relative order.
func SortByScoreMap[T Identifiable](items []T, scores map[string]float64, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		less := scores[items[i].GetID()] < scores[items[j].GetID()]
		if order == Descending {
			return scores[items[i].GetID()] > scores[items[j].GetID()]
		}
		return less
	})
}

// FilterByDistance filters items within a radius from a reference point
// and sets the Distance field on each item. Returns filtered slice.
func FilterByDistance[T any, PT interface {
	*T
	DistanceSortable
}](items []T, refLat, refLon, radius float64) []T {
	filtered := make([]T, 0, len(items))
	for i := range items {
		ptr := PT(&items[i])
		dist := HaversineDistance(refLat, refLon, ptr.GetLatitude(), ptr.GetLongitude())
		if dist <= radius {
			ptr.SetDistance(dist)
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// SortByDistanceFrom calculates distances and sorts by nearest first.
func SortByDistanceFrom[T any, PT interface {
	*T
	DistanceSortable
}](items []T, refLat, refLon float64) {
	for i := range items {
		ptr := PT(&items[i])
		if ptr.GetDistance() == 0 {
			ptr.SetDistance(HaversineDistance(
				refLat, refLon,
				ptr.GetLatitude(),
				ptr.GetLongitude(),
			))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return PT(&items[i]).GetDistance() < PT(&items[j]).GetDistance()
	})
}

// NormalizeByMax divides every score by the map's maximum, mapping the
// signal into [0, 1]. A non-positive maximum leaves scores untouched.
func NormalizeByMax(scores map[string]float64) map[string]float64 {
	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore <= 0 {
		return scores
	}
	out := make(map[string]float64, len(scores))
	for id, s := range scores {
		out[id] = s / maxScore
	}
	return out
}

// TopNByScore returns the IDs of the n highest-scoring entries,
// descending, breaking ties lexicographically for determinism.
func TopNByScore(scores map[string]float64, n int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
