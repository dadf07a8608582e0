package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/freightlens/resolver/internal/util"
	"github.com/freightlens/resolver/pkg/ai"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"
)

const defaultDimensions = 4096

// Embedder generates embeddings through an Ollama server.
type Embedder struct {
	model      string
	dimensions int
	timeoutMin int
	reqLock    *semaphore.Weighted
	metrics    ai.ModelMetrics
	Client     *api.Client
}

type headerTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	return t.base.RoundTrip(req)
}

type NewEmbedderParams struct {
	Model                 string
	BaseURL               string
	APIKey                string
	MaxConcurrentRequests int
	TimeoutMinutes        int
}

func NewEmbedder(params NewEmbedderParams) (*Embedder, error) {
	baseURL, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", params.BaseURL, err)
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			apiKey: params.APIKey,
			base:   http.DefaultTransport,
		},
	}

	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	timeoutMin := params.TimeoutMinutes
	if timeoutMin <= 0 {
		timeoutMin = 5
	}

	dimensions := int(util.GetEnvNumeric("AI_EMBED_DIM", defaultDimensions))

	return &Embedder{
		model:      params.Model,
		dimensions: dimensions,
		timeoutMin: timeoutMin,
		reqLock:    semaphore.NewWeighted(int64(maxConcurrent)),
		Client:     api.NewClient(baseURL, httpClient),
	}, nil
}

// GenerateEmbedding returns the embedding vector for input, truncated or
// padded to the configured dimensionality. Blank input yields a zero vector
// without a provider round trip.
func (o *Embedder) GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error) {
	if len(input) == 0 {
		return make([]float32, o.dimensions), nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.timeoutMin)*time.Minute)
	defer cancel()

	if err := o.reqLock.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire request lock: %w", err)
	}
	defer o.reqLock.Release(1)

	start := time.Now()

	res, err := o.Client.Embed(ctx, &api.EmbedRequest{
		Model: o.model,
		Input: string(input),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(res.Embeddings) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}

	o.recordMetrics(res, time.Since(start))

	embedding := res.Embeddings[0]
	if len(embedding) > o.dimensions {
		embedding = embedding[:o.dimensions]
	}
	for len(embedding) < o.dimensions {
		embedding = append(embedding, 0)
	}

	return embedding, nil
}

// Dimensions reports the configured embedding dimensionality.
func (o *Embedder) Dimensions() int {
	return o.dimensions
}

func (o *Embedder) recordMetrics(res *api.EmbedResponse, duration time.Duration) {
	o.metrics.InputTokens += res.PromptEvalCount
	o.metrics.TotalTokens += res.PromptEvalCount
	o.metrics.DurationMs += duration.Milliseconds()
}

// Metrics returns the accumulated call metrics.
func (o *Embedder) Metrics() ai.ModelMetrics {
	return o.metrics
}
