package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/freightlens/resolver/internal/util"
	"github.com/freightlens/resolver/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/sync/semaphore"
)

const defaultDimensions = 1536

// Embedder generates embeddings through an OpenAI-compatible API.
type Embedder struct {
	model      string
	dimensions int
	timeoutMin int
	reqLock    *semaphore.Weighted
	metrics    ai.ModelMetrics
	Client     *openai.Client
}

type NewEmbedderParams struct {
	Model                 string
	BaseURL               string
	APIKey                string
	MaxConcurrentRequests int
	TimeoutMinutes        int
}

func NewEmbedder(params NewEmbedderParams) (*Embedder, error) {
	opts := []option.RequestOption{}
	if params.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(params.BaseURL))
	}
	if params.APIKey != "" {
		opts = append(opts, option.WithAPIKey(params.APIKey))
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

	client := openai.NewClient(opts...)

	return &Embedder{
		model:      params.Model,
		dimensions: dimensions,
		timeoutMin: timeoutMin,
		reqLock:    semaphore.NewWeighted(int64(maxConcurrent)),
		Client:     &client,
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

	res, err := o.Client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(o.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{string(input)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}

	o.recordMetrics(res, time.Since(start))

	embedding := make([]float32, 0, len(res.Data[0].Embedding))
	for _, v := range res.Data[0].Embedding {
		embedding = append(embedding, float32(v))
	}
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

func (o *Embedder) recordMetrics(res *openai.CreateEmbeddingResponse, duration time.Duration) {
	o.metrics.InputTokens += int(res.Usage.PromptTokens)
	o.metrics.TotalTokens += int(res.Usage.TotalTokens)
	o.metrics.DurationMs += duration.Milliseconds()
}

// Metrics returns the accumulated call metrics.
func (o *Embedder) Metrics() ai.ModelMetrics {
	return o.metrics
}
