// Package tagger derives normalized topical tags from free text:
// service titles and descriptions, search queries, and chatbot
// replies. Extraction is deterministic and never fails; bad input
// yields an empty tag list.
package tagger

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball/english"
)

// MaxTags caps the tag sequence generated per service.
const MaxTags = 15

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)
var numeralPattern = regexp.MustCompile(`^\d+$`)

// tagSet accumulates tags preserving first-insertion order.
type tagSet struct {
	seen  map[string]bool
	order []string
}

func newTagSet() *tagSet {
	return &tagSet{seen: make(map[string]bool)}
}

func (s *tagSet) add(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.seen[tag] {
		return
	}
	s.seen[tag] = true
	s.order = append(s.order, tag)
}

// Tokenize lowercases the text, strips the generic stopword corpus,
// and returns alphanumeric tokens longer than two characters that are
// not pure numerals or hand-listed stopwords.
func Tokenize(text string) []string {
	cleaned := stopwords.CleanString(strings.ToLower(text), "en", false)
	raw := tokenPattern.FindAllString(cleaned, -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if len(token) <= 2 || numeralPattern.MatchString(token) || handStopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// GenerateTags derives at most MaxTags normalized tags from a
// service's title, description and category name.
func GenerateTags(title, description, category string) []string {
	combined := strings.ToLower(title + " " + description)
	tokens := Tokenize(combined)
	keywords := newTagSet()

	// Category name seeds the set along with its stem and synonyms
	if category != "" {
		name := strings.ToLower(category)
		keywords.add(name)
		keywords.add(english.Stem(name, false))
		for _, syn := range tagSynonyms[name] {
			keywords.add(syn)
		}
	}

	for _, token := range tokens {
		keywords.add(token)
		keywords.add(english.Stem(token, false))

		for _, main := range tagSynonymOrder {
			syns := tagSynonyms[main]
			if main == token || containsWord(syns, token) {
				keywords.add(main)
				for _, syn := range syns {
					keywords.add(syn)
				}
			}
		}

		for _, bucket := range serviceKeywordOrder {
			if matchesBucket(token, serviceKeywords[bucket]) {
				keywords.add(bucket)
				keywords.add(token)
			}
		}

		if qualityWords[token] {
			keywords.add(token)
		}
	}

	for _, word := range contextWords(combined) {
		keywords.add(word)
	}
	for _, rule := range contextualRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(combined, trigger) {
				for _, tag := range rule.tags {
					keywords.add(tag)
				}
				break
			}
		}
	}

	tags := keywords.order
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}

// ExtractQueryTags expands a free-text query into candidate tags for
// search: the query tokens plus every bucket a token activates.
func ExtractQueryTags(text string) []string {
	tags := newTagSet()
	for _, token := range Tokenize(text) {
		tags.add(token)
		for _, bucket := range serviceKeywordOrder {
			if matchesBucket(token, serviceKeywords[bucket]) {
				tags.add(bucket)
			}
		}
	}
	return tags.order
}

// botTagPriority scores a chat-derived tag by how specific it is to
// the service domain: bucket names beat bucket members beat quality
// words beat everything else.
func botTagPriority(tag string) int {
	if _, ok := serviceKeywords[tag]; ok {
		return 10
	}
	for _, words := range serviceKeywords {
		if containsWord(words, tag) {
			return 7
		}
	}
	if qualityWords[tag] {
		return 3
	}
	return 1
}

// FilterBotTags keeps the top maxTags unique chat-derived tags by
// priority, so chit-chat tokens do not dilute the profile.
func FilterBotTags(tags []string, maxTags int) []string {
	set := newTagSet()
	for _, tag := range tags {
		set.add(strings.ToLower(strings.TrimSpace(tag)))
	}
	unique := set.order
	sort.SliceStable(unique, func(i, j int) bool {
		return botTagPriority(unique[i]) > botTagPriority(unique[j])
	})
	if len(unique) > maxTags {
		unique = unique[:maxTags]
	}
	return unique
}

// matchesBucket reports whether a token activates a bucket: either
// side may contain the other.
func matchesBucket(token string, words []string) bool {
	for _, word := range words {
		if strings.Contains(token, word) || strings.Contains(word, token) {
			return true
		}
	}
	return false
}

func containsWord(words []string, token string) bool {
	for _, word := range words {
		if word == token {
			return true
		}
	}
	return false
}

// contextWords collects location, temporal and price context words
// present in the text.
func contextWords(text string) []string {
	var out []string
	for _, group := range [][]string{locationWords, timeWords, priceWords} {
		for _, word := range group {
			if strings.Contains(text, word) {
				// multi-word phrases become single tags
				out = append(out, strings.ReplaceAll(word, " ", "-"))
			}
		}
	}
	return out
}
