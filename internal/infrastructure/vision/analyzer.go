package vision

import (
	"context"
	"log"
	"strings"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// Degraded-result confidence levels
const (
	defaultConfidence  = 0.5 // classifier succeeded but gave no probability
	colorConfidence    = 0.4 // color-only fallback
	minimalConfidence  = 0.2 // nothing could be extracted
	colorFallbackLabel = "Product detected by color"
)

// Analyzer produces ImageAnalysisResults with ordered fallback composition:
// external classifier first, dominant colors second, a minimal placeholder
// last. No stage ever propagates an error to the caller.
type Analyzer struct {
	classifier domain.Classifier
	debug      bool
}

// NewAnalyzer creates an analyzer over the given classifier.
// Pass a NullClassifier to run color-only analysis.
func NewAnalyzer(classifier domain.Classifier, debug bool) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		debug:      debug,
	}
}

// Analyze turns raw image bytes into an analysis result.
// Dominant colors are computed regardless of classifier success.
func (a *Analyzer) Analyze(ctx context.Context, imageData []byte) domain.ImageAnalysisResult {
	colors := ExtractColors(imageData)

	predictions, err := a.classifier.Classify(ctx, imageData)
	if err == nil && len(predictions) > 0 {
		return a.fromPredictions(predictions, colors)
	}
	if a.debug {
		log.Printf("[VISION] classifier degraded: %v", err)
	}

	// Color-only tier: the color names double as labels
	if len(colors) > 0 && colors[0] != "unknown" {
		return domain.ImageAnalysisResult{
			Labels:     colors,
			Objects:    []string{colorFallbackLabel},
			Colors:     colors,
			Confidence: colorConfidence,
		}
	}

	// Minimal tier: even color extraction found nothing usable
	return domain.ImageAnalysisResult{
		Labels:     []string{"product"},
		Objects:    []string{"unknown"},
		Colors:     []string{"unknown"},
		Confidence: minimalConfidence,
	}
}

// fromPredictions builds the full-fidelity result from classifier output
func (a *Analyzer) fromPredictions(predictions []domain.Prediction, colors []string) domain.ImageAnalysisResult {
	// Objects: cleaned raw names in confidence order, not deduplicated
	objects := make([]string, 0, len(predictions))
	for _, p := range predictions {
		objects = append(objects, cleanObjectName(p.Label))
	}

	// Labels: mapped categories, deduplicated preserving order, unknowns dropped
	var labels []string
	seen := make(map[string]bool)
	for _, p := range predictions {
		mapped := MapLabel(p.Label)
		if mapped == LabelUnknown || seen[mapped] {
			continue
		}
		seen[mapped] = true
		labels = append(labels, mapped)
	}

	// Nothing mapped: fall back to the lowercased raw names
	if len(labels) == 0 {
		for _, object := range objects {
			labels = append(labels, strings.ToLower(object))
		}
	}

	confidence := predictions[0].Confidence
	if confidence <= 0 {
		confidence = defaultConfidence
	}

	return domain.ImageAnalysisResult{
		Labels:     labels,
		Objects:    objects,
		Colors:     colors,
		Confidence: confidence,
	}
}
