package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// maxPredictions is the number of ranked labels requested from the model
const maxPredictions = 5

// classifierPrompt asks the vision model for machine-readable output only
const classifierPrompt = `Identify the main products visible in this image. ` +
	`Respond with ONLY a JSON array of at most 5 objects ordered by descending ` +
	`confidence, each shaped {"label": string, "confidence": number between 0 and 1}. ` +
	`No prose, no markdown fences.`

// ClassifierConfig holds configuration for the OpenAI vision classifier
type ClassifierConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Debug   bool
}

// OpenAIClassifier labels images through an OpenAI-compatible vision API.
// The underlying client is initialized lazily exactly once per process;
// concurrent callers arriving during initialization share the same outcome.
type OpenAIClassifier struct {
	apiKey      string
	baseURL     string
	model       string
	timeout     time.Duration
	debug       bool
	rateLimiter *rate.Limiter

	once    sync.Once
	client  *openai.Client
	initErr error
}

// NewOpenAIClassifier creates a classifier from configuration.
// The client itself is not constructed until the first Classify call.
func NewOpenAIClassifier(config ClassifierConfig) *OpenAIClassifier {
	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClassifier{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   model,
		timeout: timeout,
		debug:   config.Debug,
		// Vision calls are expensive; keep a conservative request budget
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// ensureClient performs the at-most-once lazy initialization
func (c *OpenAIClassifier) ensureClient() error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.initErr = fmt.Errorf("%w: no API key configured", domain.ErrClassifierUnavailable)
			return
		}
		cfg := openai.DefaultConfig(c.apiKey)
		if c.baseURL != "" {
			cfg.BaseURL = c.baseURL
		}
		c.client = openai.NewClientWithConfig(cfg)
		if c.debug {
			log.Printf("[VISION] classifier initialized, model: %s", c.model)
		}
	})
	return c.initErr
}

// Classify sends the image to the vision model and returns up to five ranked
// predictions. Every failure mode surfaces as ErrClassifierUnavailable so the
// analyzer can degrade instead of branching on causes.
func (c *OpenAIClassifier) Classify(ctx context.Context, imageData []byte) ([]domain.Prediction, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: classifierPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if c.debug {
			log.Printf("[VISION] classifier request failed: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrClassifierUnavailable)
	}

	predictions, err := parsePredictions(resp.Choices[0].Message.Content)
	if err != nil {
		if c.debug {
			log.Printf("[VISION] unparseable classifier output: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}

	if c.debug {
		log.Printf("[VISION] classified %d labels", len(predictions))
	}
	return predictions, nil
}

// parsePredictions decodes the model output, tolerating markdown fences
// that some models emit despite instructions
func parsePredictions(content string) ([]domain.Prediction, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var predictions []domain.Prediction
	if err := json.Unmarshal([]byte(content), &predictions); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}

	if len(predictions) > maxPredictions {
		predictions = predictions[:maxPredictions]
	}
	return predictions, nil
}

// NullClassifier is the fallback implementation selected when no external
// model is configured; it always reports unavailable so the analyzer
// degrades straight to color extraction.
type NullClassifier struct{}

// Classify always returns ErrClassifierUnavailable
func (NullClassifier) Classify(ctx context.Context, imageData []byte) ([]domain.Prediction, error) {
	return nil, domain.ErrClassifierUnavailable
}
