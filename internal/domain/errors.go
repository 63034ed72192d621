package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrClassifierUnavailable is returned when the external image classifier
	// cannot be loaded or is disabled by configuration
	ErrClassifierUnavailable = errors.New("image classifier unavailable")

	// ErrInvalidImage is returned when image data cannot be decoded
	ErrInvalidImage = errors.New("invalid image data")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
