package models

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// TagProfile maps a normalized tag to its accumulated interest weight.
// The tag domain is an open string set; weights are non-negative finite
// floats that decay over time and on every boost.
type TagProfile map[string]float64

// Validate rejects profiles containing negative or non-finite weights.
func (p TagProfile) Validate() error {
	for tag, weight := range p {
		if weight < 0 {
			return fmt.Errorf("tag %q has negative weight %v", tag, weight)
		}
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return fmt.Errorf("tag %q has non-finite weight %v", tag, weight)
		}
	}
	return nil
}

// Decay multiplies every weight by the given factor.
func (p TagProfile) Decay(factor float64) {
	for tag := range p {
		p[tag] *= factor
	}
}

// Boost adds amount to an existing tag, or inserts a new tag at
// newAmount. Callers pass newAmount == amount for plain boosts, or a
// larger value to give first-seen tags a head start.
func (p TagProfile) Boost(tag string, amount, newAmount float64) {
	if _, ok := p[tag]; ok {
		p[tag] += amount
	} else {
		p[tag] = newAmount
	}
}

// Prune removes tags whose weight fell below the threshold.
func (p TagProfile) Prune(threshold float64) {
	for tag, weight := range p {
		if weight < threshold {
			delete(p, tag)
		}
	}
}

// Cap keeps only the top maxTags entries by weight, dropping the rest.
func (p TagProfile) Cap(maxTags int) {
	if len(p) <= maxTags {
		return
	}
	type entry struct {
		tag    string
		weight float64
	}
	entries := make([]entry, 0, len(p))
	for tag, weight := range p {
		entries = append(entries, entry{tag, weight})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].tag < entries[j].tag
	})
	for _, e := range entries[maxTags:] {
		delete(p, e.tag)
	}
}

// TimeDecayFactor returns dailyFactor^(days since lastUpdated).
func TimeDecayFactor(dailyFactor float64, lastUpdated, now time.Time) float64 {
	if lastUpdated.IsZero() || !now.After(lastUpdated) {
		return 1.0
	}
	days := now.Sub(lastUpdated).Hours() / 24
	return math.Pow(dailyFactor, days)
}

// Clone returns an independent copy of the profile.
func (p TagProfile) Clone() TagProfile {
	out := make(TagProfile, len(p))
	for tag, weight := range p {
		out[tag] = weight
	}
	return out
}

// User owns exactly one tag profile; the recommender never writes any
// other user field.
type User struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Name       string     `json:"name"`
	TagProfile TagProfile `gorm:"serializer:json" json:"tag_profile"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
