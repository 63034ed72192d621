package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// fakeCatalog is an in-test catalog over a fixed product slice
type fakeCatalog struct {
	products   []domain.Product
	categories []string
	cities     []string
}

func (f *fakeCatalog) Products(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeCatalog) Categories() []string { return f.categories }
func (f *fakeCatalog) Cities() []string     { return f.cities }

// fakeCache is a TTL-less cache with hit/miss accounting
type fakeCache struct {
	data   map[string]interface{}
	hits   int64
	misses int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (f *fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	if value, ok := f.data[key]; ok {
		f.hits++
		return value, nil
	}
	f.misses++
	return nil, domain.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Stats() domain.CacheStats {
	return domain.CacheStats{Hits: f.hits, Misses: f.misses}
}

func (f *fakeCache) Clear() {
	f.data = make(map[string]interface{})
	f.hits = 0
	f.misses = 0
}

// fakeAnalyzer returns a canned analysis for every image
type fakeAnalyzer struct {
	result domain.ImageAnalysisResult
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, imageData []byte) domain.ImageAnalysisResult {
	return f.result
}

var testVocabCategories = []string{"Fresh Produce", "Clothing & Textiles", "Electronics"}
var testVocabCities = []string{"Blantyre", "Lilongwe", "Salima"}

func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Fresh Organic Mangoes",
			Description:  "Sweet and juicy mangoes harvested from local farms in Salima.",
			Price:        100,
			Category:     "Fresh Produce",
			BusinessName: "Salima Fresh Farms",
			Location:     domain.Location{City: "Salima"},
			Rating:       4.8,
		},
		{
			ID:           "2",
			Name:         "Chitenje Fabric",
			Description:  "Traditional Malawian fabric with vibrant patterns.",
			Price:        8500,
			Category:     "Clothing & Textiles",
			BusinessName: "Mama Grace Textiles",
			Location:     domain.Location{City: "Blantyre"},
			Rating:       4.9,
		},
		{
			ID:           "3",
			Name:         "Solar Phone Charger",
			Description:  "Portable solar charger for rural areas.",
			Price:        12000,
			Category:     "Electronics",
			BusinessName: "Green Tech Malawi",
			Location:     domain.Location{City: "Lilongwe"},
			Rating:       4.5,
		},
		{
			ID:           "4",
			Name:         "Fresh Vegetables",
			Description:  "Locally grown assorted vegetables sold per kg.",
			Price:        500,
			Category:     "Fresh Produce",
			BusinessName: "Green Valley Farm",
			Location:     domain.Location{City: "Salima"},
			Rating:       4.7,
		},
		{
			ID:           "5",
			Name:         "Fresh Bananas",
			Description:  "Ripe bananas from local farms.",
			Price:        600,
			Category:     "Fresh Produce",
			BusinessName: "Dedza Orchards",
			Location:     domain.Location{City: "Lilongwe"},
			Rating:       4.5,
		},
	}
}

func newTestService(cache domain.CacheRepository, analyzer domain.ImageAnalyzer, config SearchServiceConfig) *SearchService {
	catalog := &fakeCatalog{
		products:   testProducts(),
		categories: testVocabCategories,
		cities:     testVocabCities,
	}
	if analyzer == nil {
		analyzer = &fakeAnalyzer{}
	}
	return NewSearchService(catalog, cache, analyzer, config)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks the best match first and extracts filters", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		result, err := service.Search(ctx, "cheap mangoes in salima")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		if len(result.Results) == 0 {
			t.Fatal("expected results")
		}
		if result.Results[0].ID != "1" {
			t.Errorf("top result = %s, want product 1", result.Results[0].ID)
		}
		if result.Filters.City != "Salima" {
			t.Errorf("Filters.City = %q, want Salima", result.Filters.City)
		}
		if result.Filters.MaxPrice == nil || *result.Filters.MaxPrice != 5000 {
			t.Errorf("Filters.MaxPrice = %v, want 5000", result.Filters.MaxPrice)
		}
		if result.Filters.MinPrice != nil {
			t.Errorf("Filters.MinPrice = %v, want nil", *result.Filters.MinPrice)
		}

		// All survivors satisfy the extracted filters
		for _, p := range result.Results {
			if p.Location.City != "Salima" {
				t.Errorf("product %s city = %s, want Salima", p.ID, p.Location.City)
			}
			if p.Price > 5000 {
				t.Errorf("product %s price = %v, want <= 5000", p.ID, p.Price)
			}
		}
	})

	t.Run("caps results at the configured maximum", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{MaxTextResults: 2})

		result, err := service.Search(ctx, "fresh")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		if len(result.Results) != 2 {
			t.Errorf("got %d results, want 2", len(result.Results))
		}
	})

	t.Run("empty query is valid", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		result, err := service.Search(ctx, "")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if result == nil {
			t.Fatal("expected a result for an empty query")
		}
	})

	t.Run("inverted price range matches nothing", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		result, err := service.Search(ctx, "fresh above 10000 under 200")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		if result.Filters.MinPrice == nil || *result.Filters.MinPrice != 10000 {
			t.Errorf("Filters.MinPrice = %v, want 10000", result.Filters.MinPrice)
		}
		if result.Filters.MaxPrice == nil || *result.Filters.MaxPrice != 200 {
			t.Errorf("Filters.MaxPrice = %v, want 200", result.Filters.MaxPrice)
		}
		if len(result.Results) != 0 {
			t.Errorf("got %d results for an inverted range, want 0", len(result.Results))
		}
	})

	t.Run("repeated query returns the cached result object", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		first, err := service.Search(ctx, "mangoes")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		second, err := service.Search(ctx, "mangoes")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		if first != second {
			t.Error("expected the same result object from the cache")
		}
	})

	t.Run("equivalent queries share one cache entry", func(t *testing.T) {
		cache := newFakeCache()
		service := newTestService(cache, nil, SearchServiceConfig{})

		if _, err := service.Search(ctx, "Mangoes!"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if _, err := service.Search(ctx, "  mangoes  "); err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		stats := cache.Stats()
		if stats.Hits != 1 || stats.Misses != 1 {
			t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
		}
	})
}

func TestSearchByImage(t *testing.T) {
	ctx := context.Background()

	t.Run("scores products against the analysis", func(t *testing.T) {
		analyzer := &fakeAnalyzer{result: domain.ImageAnalysisResult{
			Labels:     []string{"fruit"},
			Objects:    []string{"mango"},
			Colors:     []string{"yellow"},
			Confidence: 0.9,
		}}
		service := newTestService(newFakeCache(), analyzer, SearchServiceConfig{})

		result, err := service.SearchByImage(ctx, "photo-1", []byte("not-a-real-image"))
		if err != nil {
			t.Fatalf("SearchByImage() error = %v", err)
		}

		if len(result.Results) == 0 {
			t.Fatal("expected results")
		}
		if result.Results[0].ID != "1" {
			t.Errorf("top result = %s, want product 1", result.Results[0].ID)
		}
		if len(result.Suggestions) == 0 || result.Suggestions[0] != "mango" {
			t.Errorf("suggestions = %v, want detected objects first", result.Suggestions)
		}
		if result.ImageAnalysis.Confidence != 0.9 {
			t.Errorf("confidence = %v, want 0.9", result.ImageAnalysis.Confidence)
		}
	})

	t.Run("falls back to the catalog head when nothing matches", func(t *testing.T) {
		analyzer := &fakeAnalyzer{result: domain.ImageAnalysisResult{
			Labels:  []string{"submarine"},
			Objects: []string{"periscope"},
		}}
		service := newTestService(newFakeCache(), analyzer, SearchServiceConfig{MaxImageFallback: 3})

		result, err := service.SearchByImage(ctx, "photo-2", nil)
		if err != nil {
			t.Fatalf("SearchByImage() error = %v", err)
		}

		if len(result.Results) != 3 {
			t.Fatalf("got %d fallback results, want 3", len(result.Results))
		}
		if result.Results[0].ID != "1" {
			t.Errorf("fallback starts at %s, want catalog head", result.Results[0].ID)
		}
	})
}

func TestGetSuggestions(t *testing.T) {
	ctx := context.Background()
	service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

	t.Run("returns at most five suggestions", func(t *testing.T) {
		suggestions, err := service.GetSuggestions(ctx, "fresh")
		if err != nil {
			t.Fatalf("GetSuggestions() error = %v", err)
		}
		if len(suggestions) == 0 {
			t.Error("expected suggestions for 'fresh'")
		}
		if len(suggestions) > 5 {
			t.Errorf("got %d suggestions, want at most 5", len(suggestions))
		}
	})

	t.Run("blank query yields no suggestions", func(t *testing.T) {
		suggestions, err := service.GetSuggestions(ctx, "   ")
		if err != nil {
			t.Fatalf("GetSuggestions() error = %v", err)
		}
		if len(suggestions) != 0 {
			t.Errorf("got %v, want none", suggestions)
		}
	})
}

func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks by category then price proximity", func(t *testing.T) {
		// Reference is mid-range electronics; the close-priced electronics
		// item must beat the far-priced one, which must beat the item that
		// only matches on price
		catalog := &fakeCatalog{
			products: []domain.Product{
				{ID: "ref", Name: "Reference", Category: "Electronics", Price: 12000, Location: domain.Location{City: "Lilongwe"}},
				{ID: "close", Name: "Close Price", Category: "Electronics", Price: 11000, Location: domain.Location{City: "Blantyre"}},
				{ID: "far", Name: "Far Price", Category: "Electronics", Price: 30000, Location: domain.Location{City: "Blantyre"}},
				{ID: "other", Name: "Other Category", Category: "Clothing & Textiles", Price: 12000, Location: domain.Location{City: "Blantyre"}},
			},
			categories: testVocabCategories,
			cities:     testVocabCities,
		}
		service := NewSearchService(catalog, newFakeCache(), &fakeAnalyzer{}, SearchServiceConfig{})

		recommendations, err := service.GetRecommendations(ctx, "ref", 10)
		if err != nil {
			t.Fatalf("GetRecommendations() error = %v", err)
		}

		want := []string{"close", "far", "other"}
		if len(recommendations) != len(want) {
			t.Fatalf("got %d recommendations, want %d", len(recommendations), len(want))
		}
		for i, id := range want {
			if recommendations[i].ID != id {
				t.Errorf("recommendations[%d] = %s, want %s", i, recommendations[i].ID, id)
			}
		}
	})

	t.Run("excludes the reference and honors the limit", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		recommendations, err := service.GetRecommendations(ctx, "1", 2)
		if err != nil {
			t.Fatalf("GetRecommendations() error = %v", err)
		}

		if len(recommendations) != 2 {
			t.Errorf("got %d recommendations, want 2", len(recommendations))
		}
		for _, p := range recommendations {
			if p.ID == "1" {
				t.Error("recommendations must not include the reference product")
			}
		}
	})

	t.Run("unknown product yields an empty list without error", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		recommendations, err := service.GetRecommendations(ctx, "no-such-id", 5)
		if err != nil {
			t.Fatalf("GetRecommendations() error = %v", err)
		}
		if recommendations == nil {
			t.Error("expected an empty slice, not nil")
		}
		if len(recommendations) != 0 {
			t.Errorf("got %d recommendations, want 0", len(recommendations))
		}
	})
}

func TestCacheLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("stats track search traffic and clear resets them", func(t *testing.T) {
		service := newTestService(newFakeCache(), nil, SearchServiceConfig{})

		if _, err := service.Search(ctx, "mangoes"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if _, err := service.Search(ctx, "mangoes"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		stats := service.CacheStats()
		if stats.Hits != 1 || stats.Misses != 1 {
			t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
		}

		service.ClearCache()

		stats = service.CacheStats()
		if stats.Hits != 0 || stats.Misses != 0 {
			t.Errorf("stats after clear = %+v, want zeros", stats)
		}
	})
}

func TestWarmUpCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	service := newTestService(cache, nil, SearchServiceConfig{})

	service.WarmUpCache(ctx)

	if len(cache.data) != len(warmUpQueries) {
		t.Errorf("cache holds %d entries after warm-up, want %d", len(cache.data), len(warmUpQueries))
	}
}

func TestNormalizeForCacheKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Fresh Mangoes", "fresh mangoes"},
		{"  fresh   mangoes  ", "fresh mangoes"},
		{"Mangoes!!!", "mangoes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeForCacheKey(tt.input); got != tt.want {
			t.Errorf("normalizeForCacheKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
