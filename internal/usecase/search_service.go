package usecase

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Text ranking weights per field
const (
	weightName         = 10.0
	weightDescription  = 5.0
	weightCategory     = 3.0
	weightBusinessName = 2.0
	weightCity         = 2.0
	weightRating       = 0.5
)

// Image ranking bonuses
const (
	imageWordBonus     = 5.0 // shared word between a detected object and product text
	imageLabelBonus    = 3.0 // mapped label found in product text
	imageCategoryBonus = 4.0 // label additionally matches the category field
	imageColorBonus    = 1.0 // dominant color found in product text
	minImageWordLen    = 3   // shorter words are too noisy to count
)

// Recommendation bonuses
const (
	recSameCategoryBonus = 10.0
	recPriceBonusMax     = 5.0
	recPriceRatioCutoff  = 0.5 // no price bonus once relative diff reaches this
	recSameCityBonus     = 3.0
)

// Default result caps
const (
	defaultMaxTextResults   = 20
	defaultMaxImageFallback = 10
	defaultCacheTTL         = 5 * time.Minute
)

// warmUpQueries are pre-computed on startup to prime the result cache
var warmUpQueries = []string{
	"fresh vegetables",
	"cheap electronics",
	"chitenje fabric",
}

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL           time.Duration
	MaxTextResults     int
	MaxImageFallback   int
	EnableDebugLogging bool
}

// SearchService is the ranking engine: it combines query parsing, fuzzy
// matching and static signals into ranked product lists, memoized through
// the result cache. All failures degrade to valid (possibly empty) results.
type SearchService struct {
	catalog          domain.CatalogRepository
	cache            domain.CacheRepository
	analyzer         domain.ImageAnalyzer
	parser           *QueryParser
	suggester        *SuggestionGenerator
	cacheTTL         time.Duration
	maxTextResults   int
	maxImageFallback int
	debug            bool
}

// scoredProduct pairs a product with its ranking score for one pass
type scoredProduct struct {
	product domain.Product
	score   float64
}

// NewSearchService creates a search service with its dependencies.
// The query parser and suggestion generator are built from the catalog's
// vocabularies, whose order is the documented tie-break priority.
func NewSearchService(
	catalog domain.CatalogRepository,
	cache domain.CacheRepository,
	analyzer domain.ImageAnalyzer,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	maxText := config.MaxTextResults
	if maxText <= 0 {
		maxText = defaultMaxTextResults
	}
	maxFallback := config.MaxImageFallback
	if maxFallback <= 0 {
		maxFallback = defaultMaxImageFallback
	}

	return &SearchService{
		catalog:          catalog,
		cache:            cache,
		analyzer:         analyzer,
		parser:           NewQueryParser(catalog.Categories(), catalog.Cities()),
		suggester:        NewSuggestionGenerator(catalog.Categories(), catalog.Cities()),
		cacheTTL:         cacheTTL,
		maxTextResults:   maxText,
		maxImageFallback: maxFallback,
		debug:            config.EnableDebugLogging,
	}
}

// Search runs a text search over the catalog.
// Flow: check cache -> parse filters -> score -> sort -> filter -> cap -> cache
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	cacheKey := s.cacheKey("text", query)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if result, ok := cached.(*domain.SearchResult); ok {
			if s.debug {
				log.Printf("[SEARCH] cache hit for %q", query)
			}
			return result, nil
		}
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	filters := s.parser.Parse(query)

	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		score := weightName*FuzzyMatch(p.Name, query) +
			weightDescription*FuzzyMatch(p.Description, query) +
			weightCategory*FuzzyMatch(p.Category, query) +
			weightBusinessName*FuzzyMatch(p.BusinessName, query) +
			weightCity*FuzzyMatch(p.Location.City, query) +
			weightRating*p.Rating
		if score > 0 {
			scored = append(scored, scoredProduct{product: p, score: score})
		}
	}

	sortByScore(scored)

	results := make([]domain.Product, 0, len(scored))
	for _, sp := range scored {
		if !matchesFilters(sp.product, filters) {
			continue
		}
		results = append(results, sp.product)
		if len(results) >= s.maxTextResults {
			break
		}
	}

	result := &domain.SearchResult{
		Results:     results,
		Filters:     filters,
		Suggestions: s.suggester.Suggest(query, products),
	}

	if s.debug {
		log.Printf("[SEARCH] %q -> %d results, filters %+v", query, len(results), filters)
	}

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil && s.debug {
		log.Printf("[SEARCH] cache set failed: %v", err)
	}

	return result, nil
}

// SearchByImage runs an image search: the analyzer labels the image and the
// catalog is scored against the detected objects, labels and colors.
// An empty result set falls back to the first products in catalog order so
// the caller always has something browsable.
func (s *SearchService) SearchByImage(ctx context.Context, key string, imageData []byte) (*domain.ImageSearchResult, error) {
	cacheKey := s.cacheKey("image", key)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if result, ok := cached.(*domain.ImageSearchResult); ok {
			return result, nil
		}
	}

	analysis := s.analyzer.Analyze(ctx, imageData)

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if score := scoreAgainstAnalysis(p, analysis); score > 0 {
			scored = append(scored, scoredProduct{product: p, score: score})
		}
	}

	sortByScore(scored)

	results := make([]domain.Product, 0, len(scored))
	for _, sp := range scored {
		results = append(results, sp.product)
	}

	if len(results) == 0 {
		// Image search must always surface browsable results
		n := s.maxImageFallback
		if n > len(products) {
			n = len(products)
		}
		results = append(results, products[:n]...)
	}

	result := &domain.ImageSearchResult{
		Results:       results,
		Suggestions:   objectSuggestions(analysis.Objects),
		ImageAnalysis: analysis,
	}

	if s.debug {
		log.Printf("[SEARCH] image %q -> %d results, labels %v", key, len(results), analysis.Labels)
	}

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil && s.debug {
		log.Printf("[SEARCH] cache set failed: %v", err)
	}

	return result, nil
}

// scoreAgainstAnalysis scores one product against an image analysis result
func scoreAgainstAnalysis(p domain.Product, analysis domain.ImageAnalysisResult) float64 {
	text := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
	category := strings.ToLower(p.Category)

	score := 0.0

	// Words of detected objects found in the product text; deduplicated so
	// repeated objects do not double-count
	seen := make(map[string]bool)
	for _, object := range analysis.Objects {
		for _, word := range strings.Fields(strings.ToLower(object)) {
			if len(word) < minImageWordLen || seen[word] {
				continue
			}
			seen[word] = true
			if strings.Contains(text, word) {
				score += imageWordBonus
			}
		}
	}

	for _, label := range analysis.Labels {
		lowerLabel := strings.ToLower(label)
		if strings.Contains(text, lowerLabel) {
			score += imageLabelBonus
		}
		if strings.Contains(category, lowerLabel) {
			score += imageCategoryBonus
		}
	}

	for _, color := range analysis.Colors {
		if strings.Contains(text, strings.ToLower(color)) {
			score += imageColorBonus
		}
	}

	return score
}

// objectSuggestions derives suggestions from the top detected objects
func objectSuggestions(objects []string) []string {
	var suggestions []string
	seen := make(map[string]bool)
	for _, object := range objects {
		if len(suggestions) >= 3 {
			break
		}
		if object == "" || seen[object] {
			continue
		}
		seen[object] = true
		suggestions = append(suggestions, object)
	}
	return suggestions
}

// GetSuggestions returns typeahead suggestions for the query
func (s *SearchService) GetSuggestions(ctx context.Context, query string) ([]string, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	return s.suggester.Suggest(query, products), nil
}

// GetRecommendations ranks other products by similarity to the reference
// product: same category, close price, same city, own rating. An unknown
// product id yields an empty list, not an error.
func (s *SearchService) GetRecommendations(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	reference, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return []domain.Product{}, nil
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if p.ID == reference.ID {
			continue
		}

		score := p.Rating
		if p.Category == reference.Category {
			score += recSameCategoryBonus
		}
		if reference.Price > 0 {
			ratio := (p.Price - reference.Price) / reference.Price
			if ratio < 0 {
				ratio = -ratio
			}
			if ratio < recPriceRatioCutoff {
				// Linearly decreasing bonus, zero once the ratio hits the cutoff
				score += recPriceBonusMax * (1 - ratio/recPriceRatioCutoff)
			}
		}
		if p.Location.City == reference.Location.City {
			score += recSameCityBonus
		}

		scored = append(scored, scoredProduct{product: p, score: score})
	}

	sortByScore(scored)

	if limit <= 0 {
		limit = 5
	}
	results := make([]domain.Product, 0, limit)
	for _, sp := range scored {
		if len(results) >= limit {
			break
		}
		results = append(results, sp.product)
	}

	return results, nil
}

// WarmUpCache pre-computes a small set of popular queries
func (s *SearchService) WarmUpCache(ctx context.Context) {
	for _, query := range warmUpQueries {
		if _, err := s.Search(ctx, query); err != nil && s.debug {
			log.Printf("[SEARCH] warm-up failed for %q: %v", query, err)
		}
	}
}

// CacheStats exposes the result cache counters
func (s *SearchService) CacheStats() domain.CacheStats {
	return s.cache.Stats()
}

// ClearCache empties the result cache and resets its counters
func (s *SearchService) ClearCache() {
	s.cache.Clear()
}

// cacheKey derives a deterministic key from search mode and query text
func (s *SearchService) cacheKey(mode, query string) string {
	return "search:" + mode + ":" + normalizeForCacheKey(query)
}

// normalizeForCacheKey lowercases, strips special characters and collapses
// whitespace so equivalent queries share one cache entry
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// sortByScore orders candidates descending by score; the sort is stable so
// ties preserve catalog order
func sortByScore(scored []scoredProduct) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
}

// matchesFilters applies parsed filters as a post-filter: exact category and
// city match, inclusive price bounds. An inverted range matches nothing.
func matchesFilters(p domain.Product, filters domain.SearchFilters) bool {
	if filters.Category != "" && p.Category != filters.Category {
		return false
	}
	if filters.City != "" && p.Location.City != filters.City {
		return false
	}
	if filters.MinPrice != nil && p.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
		return false
	}
	return true
}
