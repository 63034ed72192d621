package usecase

import "strings"

// Fuzzy match heuristics for free-text scoring. Not edit-distance based:
// an exact case-insensitive substring hit scores 1, otherwise the score is
// the fraction of query tokens found as substrings of the text.

// FuzzyMatch scores how well query matches text, in [0,1].
// Empty text or empty query scores exactly 0.
func FuzzyMatch(text, query string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	query = strings.ToLower(strings.TrimSpace(query))

	if text == "" || query == "" {
		return 0
	}

	// Exact substring containment is the maximum score
	if strings.Contains(text, query) {
		return 1
	}

	// Token overlap: fraction of query words appearing in the text
	words := strings.Fields(query)
	if len(words) == 0 {
		return 0
	}

	matched := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			matched++
		}
	}

	return float64(matched) / float64(len(words))
}
