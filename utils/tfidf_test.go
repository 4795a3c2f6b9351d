package utils

import (
	"math"
	"testing"
)

func TestCorpusWeight(t *testing.T) {
	corpus := NewCorpus([][]string{
		{"cleaning", "kitchen", "cleaning"},
		{"plumbing", "repair"},
	})

	if got := corpus.Weight("missing"); got != 0 {
		t.Errorf("unseen token should weigh 0, got %v", got)
	}

	// "cleaning" appears twice in a 3-token doc: tf = 2/3, df = 1
	idf := math.Log(3.0/2.0) + 1
	want := (2.0 / 3.0) * idf
	if got := corpus.Weight("cleaning"); math.Abs(got-want) > 1e-9 {
		t.Errorf("Weight(cleaning) = %v, want %v", got, want)
	}
}

func TestCorpusWeight_RareTokenBeatsCommon(t *testing.T) {
	corpus := NewCorpus([][]string{
		{"cleaning", "service"},
		{"plumbing", "service"},
		{"painting", "service"},
	})

	// "service" appears everywhere; "plumbing" once
	common := corpus.Weight("service") / 3 // per-document share
	rare := corpus.Weight("plumbing")
	if rare <= common {
		t.Errorf("rare token should outweigh a ubiquitous one per document: rare=%v common=%v", rare, common)
	}
}

func TestScoreTokens(t *testing.T) {
	corpus := NewCorpus([][]string{
		{"cleaning", "kitchen"},
	})

	single := corpus.ScoreTokens([]string{"cleaning"})
	double := corpus.ScoreTokens([]string{"cleaning", "cleaning"})
	if math.Abs(double-2*single) > 1e-9 {
		t.Errorf("duplicate tokens should count per occurrence: %v vs %v", double, 2*single)
	}

	if got := corpus.ScoreTokens([]string{"missing", "tokens"}); got != 0 {
		t.Errorf("unknown tokens should score 0, got %v", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	identical := CosineSimilarity([]string{"a", "b"}, []string{"a", "b"})
	if math.Abs(identical-1.0) > 1e-9 {
		t.Errorf("identical documents should score 1.0, got %v", identical)
	}

	disjoint := CosineSimilarity([]string{"a", "b"}, []string{"c", "d"})
	if disjoint != 0 {
		t.Errorf("disjoint documents should score 0, got %v", disjoint)
	}

	partial := CosineSimilarity([]string{"a", "b"}, []string{"a", "c"})
	if partial <= 0 || partial >= 1 {
		t.Errorf("partial overlap should be in (0, 1), got %v", partial)
	}

	if got := CosineSimilarity(nil, []string{"a"}); got != 0 {
		t.Errorf("empty side should score 0, got %v", got)
	}
}

func TestProfileDocument(t *testing.T) {
	doc := ProfileDocument(map[string]float64{"cleaning": 1.0, "repair": 0.05})

	counts := map[string]int{}
	for _, token := range doc {
		counts[token]++
	}

	// weight 1.0 repeats 5 times, tiny weights still appear once
	if counts["cleaning"] != 5 {
		t.Errorf("expected 5 repeats for weight 1.0, got %d", counts["cleaning"])
	}
	if counts["repair"] != 1 {
		t.Errorf("expected 1 repeat for near-zero weight, got %d", counts["repair"])
	}
}
