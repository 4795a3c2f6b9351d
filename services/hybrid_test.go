package services

import (
	"math"
	"testing"
)

func TestProfileWeightedScore(t *testing.T) {
	// tag 5, content 0.5, collab 0.2, location 0.8
	got := ProfileWeightedScore(5, 0.5, 0.2, 0.8)
	want := 5*0.6 + 0.5*0.4 + 0.2*0.3 + 0.8*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ProfileWeightedScore() = %v, want %v", got, want)
	}
}

// A strong tag match must beat a better location: cleaning weight 5
// on a matching service outranks a closer non-matching one.
func TestProfileWeightedScore_TagDominates(t *testing.T) {
	// Service A: tags match (5.0), 0.5 km away
	scoreA := ProfileWeightedScore(5, 0, 0, 1/(0.5+1))
	// Service B: no tag match, 0.1 km away
	scoreB := ProfileWeightedScore(0, 0, 0, 1/(0.1+1))

	if scoreA <= scoreB {
		t.Errorf("tag match should dominate proximity: A=%v B=%v", scoreA, scoreB)
	}
}

// An empty profile leaves only the location term, so the ranking
// reduces to nearest-first.
func TestProfileWeightedScore_EmptyProfile(t *testing.T) {
	near := ProfileWeightedScore(0, 0, 0, 1/(0.1+1))
	far := ProfileWeightedScore(0, 0, 0, 1/(5.0+1))

	if near <= far {
		t.Errorf("with no tag signal, closer must rank higher: near=%v far=%v", near, far)
	}
}

func TestProfileLocationScore(t *testing.T) {
	got := ProfileLocationScore(5, 0.5)
	want := 5*0.9 + 0.5*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ProfileLocationScore() = %v, want %v", got, want)
	}
}

func TestCombineSignals(t *testing.T) {
	signals := SignalSet{
		Collaborative: map[string]float64{"a": 1.0},
		Content:       map[string]float64{"a": 0.5, "b": 1.0},
		Location:      map[string]float64{"b": 0.8},
		Popularity:    map[string]float64{"a": 0.2, "b": 0.4},
	}

	combined := CombineSignals(signals, DefaultHybridWeights, nil)

	wantA := 1.0*0.3 + 0.5*0.4 + 0 + 0.2*0.1
	wantB := 0 + 1.0*0.4 + 0.8*0.1 + 0.4*0.1
	if math.Abs(combined["a"]-wantA) > 1e-9 {
		t.Errorf("combined[a] = %v, want %v", combined["a"], wantA)
	}
	if math.Abs(combined["b"]-wantB) > 1e-9 {
		t.Errorf("combined[b] = %v, want %v", combined["b"], wantB)
	}
}

func TestCombineSignals_ExcludesBooked(t *testing.T) {
	signals := SignalSet{
		Collaborative: map[string]float64{"booked": 1.0, "open": 0.5},
	}
	booked := map[string]bool{"booked": true}

	combined := CombineSignals(signals, DefaultHybridWeights, booked)

	if _, ok := combined["booked"]; ok {
		t.Error("booked service must never appear in the combined list")
	}
	if _, ok := combined["open"]; !ok {
		t.Error("unbooked service should remain")
	}
}

func TestInjectCollaborativeOnly(t *testing.T) {
	combined := map[string]float64{"present": 0.9}
	collaborative := map[string]float64{
		"present": 0.8, "c1": 0.7, "c2": 0.6, "c3": 0.5, "c4": 0.4,
	}
	topIDs := []string{"present", "c1", "c2", "c3", "c4"}

	InjectCollaborativeOnly(combined, collaborative, nil, topIDs)

	// At most 3 injected, already-present entry untouched
	if len(combined) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(combined), combined)
	}
	if combined["present"] != 0.9 {
		t.Error("existing entry must keep its score")
	}
	if math.Abs(combined["c1"]-0.07) > 1e-9 {
		t.Errorf("injected entry should carry a 0.1 weight: got %v", combined["c1"])
	}
	if _, ok := combined["c4"]; ok {
		t.Error("injection must stop at three entries")
	}
}

func TestInjectCollaborativeOnly_SkipsBooked(t *testing.T) {
	combined := map[string]float64{}
	collaborative := map[string]float64{"booked": 1.0, "open": 0.5}
	booked := map[string]bool{"booked": true}

	InjectCollaborativeOnly(combined, collaborative, booked, []string{"booked", "open"})

	if _, ok := combined["booked"]; ok {
		t.Error("booked service must not be injected")
	}
	if _, ok := combined["open"]; !ok {
		t.Error("open service should be injected")
	}
}

func TestInjectTopRated(t *testing.T) {
	combined := map[string]float64{}
	topRated := []RatedService{
		{ID: "plain", AvgRating: 4.0, Tags: []string{"plumbing"}},
		{ID: "matching", AvgRating: 4.0, Tags: []string{"cleaning"}},
	}
	profileTags := map[string]bool{"cleaning": true}

	InjectTopRated(combined, topRated, nil, profileTags)

	if math.Abs(combined["plain"]-4.0*0.05) > 1e-9 {
		t.Errorf("plain bonus = %v, want %v", combined["plain"], 4.0*0.05)
	}
	if math.Abs(combined["matching"]-4.0*0.15) > 1e-9 {
		t.Errorf("overlap bonus = %v, want %v", combined["matching"], 4.0*0.15)
	}
}

func TestInjectMostReviewed(t *testing.T) {
	combined := map[string]float64{"present": 1.0}
	mostReviewed := []RatedService{
		{ID: "present", ReviewCount: 100},
		{ID: "plain", ReviewCount: 50, Tags: []string{"plumbing"}},
		{ID: "matching", ReviewCount: 50, Tags: []string{"cleaning"}},
	}
	profileTags := map[string]bool{"cleaning": true}

	InjectMostReviewed(combined, mostReviewed, nil, profileTags)

	if combined["present"] != 1.0 {
		t.Error("existing entry must keep its score")
	}
	if math.Abs(combined["plain"]-50*0.02) > 1e-9 {
		t.Errorf("plain bonus = %v, want %v", combined["plain"], 50*0.02)
	}
	if math.Abs(combined["matching"]-50*0.08) > 1e-9 {
		t.Errorf("overlap bonus = %v, want %v", combined["matching"], 50*0.08)
	}
}

func TestInjectTopRated_SkipsBooked(t *testing.T) {
	combined := map[string]float64{}
	booked := map[string]bool{"booked": true}

	InjectTopRated(combined, []RatedService{{ID: "booked", AvgRating: 5}}, booked, nil)

	if len(combined) != 0 {
		t.Error("booked service must not be injected")
	}
}

func TestSortScores(t *testing.T) {
	ranked := sortScores(map[string]float64{"low": 0.1, "high": 0.9, "mid": 0.5})

	if ranked[0].ID != "high" || ranked[1].ID != "mid" || ranked[2].ID != "low" {
		t.Errorf("unexpected order: %v", ranked)
	}
}

func TestSortScores_DeterministicTies(t *testing.T) {
	ranked := sortScores(map[string]float64{"b": 0.5, "a": 0.5, "c": 0.5})

	if ranked[0].ID != "a" || ranked[1].ID != "b" || ranked[2].ID != "c" {
		t.Errorf("ties should break lexicographically: %v", ranked)
	}
}

func TestPaginate(t *testing.T) {
	ranked := make([]ScoredService, 25)
	for i := range ranked {
		ranked[i] = ScoredService{ID: string(rune('a' + i))}
	}

	page, pagination := Paginate(ranked, 2, 10)

	if len(page) != 10 {
		t.Errorf("page length = %d, want 10", len(page))
	}
	if pagination.Total != 25 || pagination.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", pagination)
	}

	last, _ := Paginate(ranked, 3, 10)
	if len(last) != 5 {
		t.Errorf("last page length = %d, want 5", len(last))
	}

	beyond, _ := Paginate(ranked, 9, 10)
	if len(beyond) != 0 {
		t.Errorf("out-of-range page should be empty, got %d", len(beyond))
	}
}
