package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// Qualitative price cue thresholds in MWK
const (
	cheapPriceCeiling = 5000.0
	premiumPriceFloor = 10000.0
)

// Compiled regex patterns for explicit numeric price cues
var (
	maxPricePattern = regexp.MustCompile(`(?i)\b(?:under|below)\s+(\d+)`)
	minPricePattern = regexp.MustCompile(`(?i)\b(?:above|over)\s+(\d+)`)
)

// cheapKeywords trigger an upper price bound, premiumKeywords a lower one
var (
	cheapKeywords   = []string{"cheap", "affordable", "budget"}
	premiumKeywords = []string{"expensive", "premium", "luxury"}
)

// QueryParser extracts structured filters from a free-text query by scanning
// the controlled vocabularies and the price-cue patterns. Pure and
// deterministic: identical input always yields identical filters.
type QueryParser struct {
	categories []string
	cities     []string
}

// NewQueryParser creates a parser over the given vocabularies.
// Vocabulary position is the tie-break priority: the first entry whose
// lowercase form appears in the query wins.
func NewQueryParser(categories, cities []string) *QueryParser {
	return &QueryParser{
		categories: categories,
		cities:     cities,
	}
}

// Parse extracts category, city and price bounds from the query.
//
// Precedence rule for price cues: qualitative keywords (cheap/premium) are
// applied first, explicit numeric cues ("under N" / "above N") are applied
// last and override the qualitative bound on the same end.
func (p *QueryParser) Parse(query string) domain.SearchFilters {
	filters := domain.SearchFilters{}
	lowerQuery := strings.ToLower(query)

	if lowerQuery == "" {
		return filters
	}

	// Category: first vocabulary entry contained in the query, at most one
	for _, category := range p.categories {
		if strings.Contains(lowerQuery, strings.ToLower(category)) {
			filters.Category = category
			break
		}
	}

	// City: same scan, independent of category detection
	for _, city := range p.cities {
		if strings.Contains(lowerQuery, strings.ToLower(city)) {
			filters.City = city
			break
		}
	}

	// Qualitative cues first
	if containsAny(lowerQuery, cheapKeywords) {
		max := cheapPriceCeiling
		filters.MaxPrice = &max
	}
	if containsAny(lowerQuery, premiumKeywords) {
		min := premiumPriceFloor
		filters.MinPrice = &min
	}

	// Explicit numeric cues override the qualitative bound on the same end
	if m := maxPricePattern.FindStringSubmatch(lowerQuery); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.MaxPrice = &n
		}
	}
	if m := minPricePattern.FindStringSubmatch(lowerQuery); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.MinPrice = &n
		}
	}

	return filters
}

// containsAny reports whether s contains any of the keywords
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
