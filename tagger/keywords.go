package tagger

import "sort"

// serviceKeywords maps each service-domain bucket to the words that
// activate it. A token that substring-matches any bucket word tags the
// service with both the bucket name and the token itself.
var serviceKeywords = map[string][]string{
	"cleaning":       {"clean", "cleaning", "housekeeping", "maid", "janitor", "sanitize", "disinfect", "dust", "vacuum", "mop"},
	"repair":         {"repair", "fix", "maintenance", "install", "replace", "upgrade", "service", "troubleshoot", "diagnose"},
	"beauty":         {"beauty", "salon", "spa", "massage", "facial", "manicure", "pedicure", "haircut", "styling", "makeup"},
	"fitness":        {"fitness", "gym", "workout", "training", "yoga", "pilates", "personal", "coach", "exercise"},
	"education":      {"tutor", "teaching", "coaching", "training", "education", "learning", "course", "class", "workshop"},
	"technology":     {"tech", "computer", "software", "programming", "web", "app", "digital", "it", "support"},
	"transportation": {"transport", "delivery", "pickup", "drive", "car", "bike", "logistics", "shipping"},
	"food":           {"catering", "cooking", "chef", "food", "meal", "restaurant", "delivery", "baking"},
	"photography":    {"photo", "photography", "camera", "video", "filming", "editing", "studio"},
	"legal":          {"legal", "lawyer", "attorney", "consultation", "document", "contract", "advice"},
	"financial":      {"accounting", "tax", "finance", "bookkeeping", "audit", "consulting", "investment"},
	"health":         {"medical", "health", "therapy", "counseling", "nursing", "care", "wellness", "treatment"},
	"home":           {"home", "house", "interior", "design", "renovation", "construction", "plumbing", "electrical"},
	"pet":            {"pet", "dog", "cat", "animal", "veterinary", "grooming", "walking", "sitting"},
	"event":          {"event", "party", "wedding", "celebration", "planning", "decoration", "entertainment"},
	"security":       {"security", "guard", "surveillance", "protection", "safety", "monitoring"},
	"gardening":      {"garden", "landscaping", "lawn", "plants", "irrigation", "maintenance"},
	"automotive":     {"car", "auto", "vehicle", "mechanic", "repair", "maintenance", "service"},
}

// tagSynonyms expands a matched tag into common variants of the same
// service concept.
var tagSynonyms = map[string][]string{
	"cleaning":    {"clean", "sanitize", "disinfect", "tidy"},
	"repair":      {"fix", "mend", "restore", "patch"},
	"beauty":      {"salon", "spa", "grooming", "makeover"},
	"fitness":     {"workout", "exercise", "training", "gym"},
	"education":   {"tutor", "teach", "lesson", "course"},
	"technology":  {"tech", "it", "software", "computer"},
	"food":        {"catering", "meal", "chef", "cook"},
	"photography": {"photo", "camera", "shoot", "video"},
	"legal":       {"lawyer", "attorney", "legal", "counsel"},
	"financial":   {"accounting", "tax", "finance", "audit"},
	"health":      {"medical", "therapy", "wellness", "care"},
	"home":        {"house", "residence", "apartment", "dwelling"},
	"pet":         {"animal", "dog", "cat", "veterinary"},
	"event":       {"party", "wedding", "celebration", "gathering"},
	"security":    {"guard", "protection", "safety", "surveillance"},
	"gardening":   {"garden", "lawn", "landscape", "plants"},
	"automotive":  {"car", "vehicle", "auto", "mechanic"},
}

// handStopwords supplements the generic stopword corpus.
var handStopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// qualityWords are kept verbatim when they appear as tokens.
var qualityWords = map[string]bool{
	"service": true, "professional": true, "expert": true,
	"quality": true, "reliable": true, "experienced": true,
}

// Context word groups matched by substring against the combined text.
var (
	locationWords = []string{
		"home", "house", "office", "apartment", "building", "room",
		"indoor", "outdoor", "onsite", "remote", "online",
		"local", "nearby", "within", "area", "zone",
	}
	timeWords = []string{
		"hour", "daily", "weekly", "monthly", "yearly",
		"quick", "fast", "urgent", "emergency", "same day",
		"flexible", "available", "schedule", "appointment",
	}
	priceWords = []string{
		"affordable", "cheap", "budget", "economical",
		"premium", "luxury", "high end", "exclusive",
		"discount", "offer", "deal", "package",
	}
)

// Map iteration order is randomized, but extraction must be
// deterministic: the tag list is insertion-ordered and truncated, so
// the buckets and synonyms are always walked in sorted key order.
var (
	serviceKeywordOrder = sortedKeys(serviceKeywords)
	tagSynonymOrder     = sortedKeys(tagSynonyms)
)

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// contextualRule adds tags when the text contains any trigger phrase.
type contextualRule struct {
	triggers []string
	tags     []string
}

var contextualRules = []contextualRule{
	{[]string{"cleaning", "clean"}, []string{"cleaning", "maintenance"}},
	{[]string{"repair", "fix"}, []string{"repair", "maintenance"}},
	{[]string{"install", "setup"}, []string{"installation", "setup"}},
	{[]string{"consult", "advice"}, []string{"consultation", "advice"}},
	{[]string{"teach", "tutor"}, []string{"education", "teaching"}},
	{[]string{"design", "creative"}, []string{"design", "creative"}},
	{[]string{"delivery", "transport"}, []string{"delivery", "transport"}},
	{[]string{"professional", "expert"}, []string{"professional", "expert"}},
	{[]string{"certified", "licensed"}, []string{"certified", "licensed"}},
	{[]string{"experienced", "years"}, []string{"experienced"}},
}
