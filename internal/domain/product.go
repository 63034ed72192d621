package domain

// Product represents a marketplace listing supplied by the catalog.
// The search core treats products as read-only: category and city are
// expected to come from the controlled vocabularies, but values outside
// them are tolerated and simply never match a filter.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	BusinessName string   `json:"businessName"`
	BusinessID   string   `json:"businessId,omitempty"`
	Location     Location `json:"location"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	DateAdded    string   `json:"dateAdded,omitempty"`
}

// Location holds the city (controlled vocabulary) and geo-coordinates
type Location struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// SearchFilters holds structured filters extracted from a free-text query.
// Empty string means "no filter"; nil price bound means unbounded on that end.
// An inverted range (min > max) is legal input and matches no products.
type SearchFilters struct {
	Category string   `json:"category,omitempty"`
	City     string   `json:"city,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// HasPriceRange reports whether at least one price bound is set
func (f SearchFilters) HasPriceRange() bool {
	return f.MinPrice != nil || f.MaxPrice != nil
}

// Prediction is a single ranked label from an image classifier
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ImageAnalysisResult is the outcome of analyzing one uploaded image.
// Labels are mapped category names (deduplicated, order-preserving), Objects
// are the raw detected names in descending confidence order, Colors are the
// dominant color names. Computed once per image-search call, never mutated.
type ImageAnalysisResult struct {
	Labels     []string `json:"labels"`
	Objects    []string `json:"objects"`
	Colors     []string `json:"colors"`
	Confidence float64  `json:"confidence"`
}

// SearchResult is the payload of a text search
type SearchResult struct {
	Results     []Product     `json:"results"`
	Filters     SearchFilters `json:"filters"`
	Suggestions []string      `json:"suggestions"`
}

// ImageSearchResult is the payload of an image search
type ImageSearchResult struct {
	Results       []Product           `json:"results"`
	Suggestions   []string            `json:"suggestions"`
	ImageAnalysis ImageAnalysisResult `json:"imageAnalysis"`
}

// CacheStats exposes the result cache hit/miss counters
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}
