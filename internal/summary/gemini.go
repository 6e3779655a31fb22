package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"salesboard/internal/model"
)

// DefaultModel used when config leaves the model empty
const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini api key not configured")

// GeminiSummarizer calls the Gemini API through the GenAI SDK.
// The client is created on first use and shared by later calls.
type GeminiSummarizer struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

var _ Summarizer = (*GeminiSummarizer)(nil)

func NewGeminiSummarizer(apiKey, model string) *GeminiSummarizer {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiSummarizer{apiKey: apiKey, model: model}
}

// genaiClient returns the shared client; a failed creation is retried on the next call.
func (g *GeminiSummarizer) genaiClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *GeminiSummarizer) Summarize(ctx context.Context, person model.Salesperson, m model.MetricsSummary) (string, error) {
	client, err := g.genaiClient(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(person.Name, m)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return result.Text(), nil
}
