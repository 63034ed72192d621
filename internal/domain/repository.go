package domain

import (
	"context"
	"time"
)

// CatalogRepository supplies the read-only product catalog and the two
// controlled vocabularies. Implementations must return stable ordering:
// vocabulary position is the documented tie-break priority for query parsing.
type CatalogRepository interface {
	Products(ctx context.Context) ([]Product, error)
	ProductByID(ctx context.Context, id string) (*Product, error)
	Categories() []string
	Cities() []string
}

// CacheRepository defines the interface for result caching with hit/miss
// accounting. Get counts a hit only when the entry exists and is fresh.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Stats() CacheStats
	Clear()
}

// Classifier is the capability boundary for an external image-labeling model.
// Implementations return up to five ranked predictions or
// ErrClassifierUnavailable when the model cannot serve the request.
type Classifier interface {
	Classify(ctx context.Context, imageData []byte) ([]Prediction, error)
}

// ImageAnalyzer turns raw image bytes into an ImageAnalysisResult.
// Implementations never fail: any internal error degrades to a lower-fidelity
// but valid result.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, imageData []byte) ImageAnalysisResult
}
