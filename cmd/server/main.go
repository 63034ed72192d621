package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/loki47z/msih-hackathon/config"
	httpDelivery "github.com/loki47z/msih-hackathon/internal/delivery/http"
	"github.com/loki47z/msih-hackathon/internal/domain"
	"github.com/loki47z/msih-hackathon/internal/infrastructure/cache"
	"github.com/loki47z/msih-hackathon/internal/infrastructure/catalog"
	"github.com/loki47z/msih-hackathon/internal/infrastructure/vision"
	"github.com/loki47z/msih-hackathon/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Marketplace Search v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Infrastructure: catalog, result cache, image analysis
	productCatalog := catalog.NewSeededCatalog()
	resultCache := cache.NewMemoryCache()

	var classifier domain.Classifier
	if cfg.Classifier.Enabled {
		classifier = vision.NewOpenAIClassifier(vision.ClassifierConfig{
			APIKey:  cfg.Classifier.APIKey,
			BaseURL: cfg.Classifier.BaseURL,
			Model:   cfg.Classifier.Model,
			Timeout: cfg.Classifier.Timeout,
			Debug:   cfg.Search.Debug,
		})
		log.Printf("Image classifier enabled: %s", cfg.Classifier.Model)
	} else {
		classifier = vision.NullClassifier{}
		log.Printf("Image classifier disabled - color-only image analysis")
	}

	analyzer := vision.NewAnalyzer(classifier, cfg.Search.Debug)

	// Usecase layer
	searchService := usecase.NewSearchService(
		productCatalog,
		resultCache,
		analyzer,
		usecase.SearchServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxTextResults:     cfg.Search.MaxResults,
			MaxImageFallback:   cfg.Search.MaxImageFallback,
			EnableDebugLogging: cfg.Search.Debug,
		},
	)

	// Prime the cache with popular queries
	searchService.WarmUpCache(context.Background())

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
