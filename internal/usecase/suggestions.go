package usecase

import (
	"strings"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

const (
	maxSuggestions       = 5
	suggestionSampleSize = 10
	suggestionThreshold  = 0.3
)

// Canned suggestions emitted on keyword triggers
var (
	freshSuggestions = []string{
		"Fresh vegetables from local farms",
		"Fresh fruits in season",
	}
	cheapSuggestion = "Products under 5,000 MWK"
)

// SuggestionGenerator produces typeahead suggestions from the vocabularies
// and a bounded sample of the catalog. Output order is generation order:
// categories, cities, product names, keyword triggers. No re-ranking.
type SuggestionGenerator struct {
	categories []string
	cities     []string
}

// NewSuggestionGenerator creates a generator over the given vocabularies
func NewSuggestionGenerator(categories, cities []string) *SuggestionGenerator {
	return &SuggestionGenerator{
		categories: categories,
		cities:     cities,
	}
}

// Suggest returns up to 5 distinct suggestion strings for the query.
// Only the first suggestionSampleSize catalog products are scanned.
func (g *SuggestionGenerator) Suggest(query string, catalog []domain.Product) []string {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if lowerQuery == "" {
		return nil
	}

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if len(suggestions) >= maxSuggestions || seen[s] {
			return
		}
		seen[s] = true
		suggestions = append(suggestions, s)
	}

	// Category suggestions: full-name containment or first-word overlap
	for _, category := range g.categories {
		lowerCategory := strings.ToLower(category)
		firstWord := strings.Fields(lowerCategory)[0]
		if strings.Contains(lowerCategory, lowerQuery) || strings.Contains(lowerQuery, firstWord) {
			add(category + " products")
		}
	}

	// City suggestions: first three letters appearing in the query
	for _, city := range g.cities {
		prefix := strings.ToLower(city)
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if strings.Contains(lowerQuery, prefix) {
			add("Products in " + city)
		}
	}

	// Product name suggestions from a bounded catalog sample
	sample := catalog
	if len(sample) > suggestionSampleSize {
		sample = sample[:suggestionSampleSize]
	}
	for _, product := range sample {
		if FuzzyMatch(product.Name, lowerQuery) > suggestionThreshold {
			add(product.Name)
		}
	}

	// Keyword triggers
	if strings.Contains(lowerQuery, "fresh") {
		for _, s := range freshSuggestions {
			add(s)
		}
	}
	if strings.Contains(lowerQuery, "cheap") || strings.Contains(lowerQuery, "affordable") {
		add(cheapSuggestion)
	}

	return suggestions
}
