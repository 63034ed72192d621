package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loki47z/msih-hackathon/internal/infrastructure/vision"
	"github.com/loki47z/msih-hackathon/internal/usecase"
)

// maxImagePayloadBytes caps uploaded image payloads (base64-inflated)
const maxImagePayloadBytes = 10 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "marketplace-search",
		"version": "1.0.0",
	})
}

// Search handles text search requests: GET /api/v1/search?q=...
// An empty query is valid and yields empty-or-rating-ranked results.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	result, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// imageSearchRequest is the body of POST /api/v1/search/image
type imageSearchRequest struct {
	ImageData      string `json:"imageData" binding:"required"`
	AnalysisType   string `json:"analysisType,omitempty"`
	PlaceholderKey string `json:"placeholderKey,omitempty"`
}

// SearchByImage handles image search requests
func (h *Handler) SearchByImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImagePayloadBytes)

	var req imageSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageData is required"})
		return
	}

	key := req.PlaceholderKey
	if key == "" {
		key = req.ImageData[:min(64, len(req.ImageData))]
	}

	imageData := vision.DecodeImagePayload(req.ImageData)

	result, err := h.search.SearchByImage(c.Request.Context(), key, imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Suggestions handles typeahead requests: GET /api/v1/suggestions?q=...
func (h *Handler) Suggestions(c *gin.Context) {
	query := c.Query("q")

	suggestions, err := h.search.GetSuggestions(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "suggestions failed"})
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Recommendations handles GET /api/v1/products/:id/recommendations?limit=N
// An unknown product id yields an empty list, not an error.
func (h *Handler) Recommendations(c *gin.Context) {
	productID := c.Param("id")

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	recommendations, err := h.search.GetRecommendations(c.Request.Context(), productID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendations failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// CacheStats exposes the result cache hit/miss counters
func (h *Handler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.CacheStats())
}

// ClearCache empties the result cache and resets its counters
func (h *Handler) ClearCache(c *gin.Context) {
	h.search.ClearCache()
	c.Status(http.StatusNoContent)
}
