package utils

import (
	"math"
)

// =============================================================================
// TF-IDF Corpus & Cosine Similarity
// =============================================================================

// Corpus holds term frequencies and document frequencies over a set of
// tokenized documents, so token weights can be queried cheaply.
type Corpus struct {
	termFrequencies []map[string]float64
	docFrequencies  map[string]int
	totalDocuments  int
}

// NewCorpus builds a corpus from pre-tokenized documents.
func NewCorpus(documents [][]string) *Corpus {
	c := &Corpus{
		termFrequencies: make([]map[string]float64, len(documents)),
		docFrequencies:  make(map[string]int),
		totalDocuments:  len(documents),
	}

	for i, doc := range documents {
		tf := make(map[string]float64)
		for _, token := range doc {
			tf[token]++
		}
		if len(doc) > 0 {
			for token := range tf {
				tf[token] /= float64(len(doc))
			}
		}
		c.termFrequencies[i] = tf
		for token := range tf {
			c.docFrequencies[token]++
		}
	}

	return c
}

// Weight returns the aggregate TF-IDF weight of a token across the
// corpus: summed TF over all documents times smoothed IDF. Tokens the
// corpus never saw weigh zero.
func (c *Corpus) Weight(token string) float64 {
	df := c.docFrequencies[token]
	if df == 0 || c.totalDocuments == 0 {
		return 0
	}
	tfSum := 0.0
	for _, tf := range c.termFrequencies {
		tfSum += tf[token]
	}
	idf := math.Log(float64(1+c.totalDocuments)/float64(1+df)) + 1
	return tfSum * idf
}

// ScoreTokens sums the corpus weight of every token that the corpus
// knows about. Duplicate tokens count once per occurrence.
func (c *Corpus) ScoreTokens(tokens []string) float64 {
	score := 0.0
	for _, token := range tokens {
		score += c.Weight(token)
	}
	return score
}

// CosineSimilarity computes the cosine of the term-frequency vectors
// of two token sequences over their vocabulary union. Returns 0 when
// either side is empty.
func CosineSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	freqA := make(map[string]float64)
	for _, token := range a {
		freqA[token]++
	}
	freqB := make(map[string]float64)
	for _, token := range b {
		freqB[token]++
	}

	dot := 0.0
	for token, fa := range freqA {
		dot += fa * freqB[token]
	}

	normA := 0.0
	for _, fa := range freqA {
		normA += fa * fa
	}
	normB := 0.0
	for _, fb := range freqB {
		normB += fb * fb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ProfileDocument flattens a tag profile into a pseudo-document:
// each tag repeats proportionally to its weight, so heavier interests
// pull the term-frequency vector harder.
func ProfileDocument(profile map[string]float64) []string {
	var doc []string
	for tag, weight := range profile {
		repeats := int(math.Round(weight * 5))
		if repeats < 1 {
			repeats = 1
		}
		for i := 0; i < repeats; i++ {
			doc = append(doc, tag)
		}
	}
	return doc
}
