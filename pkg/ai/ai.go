package ai

import "context"

// Embedder is the narrow interface the resolution engine depends on for
// semantic matching. Implementations call an external embedding provider;
// the engine never sees provider specifics.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, input []byte) ([]float32, error)

	// Dimensions reports the provider's fixed vector dimensionality. The
	// engine sizes zero-vector fallbacks to match.
	Dimensions() int
}

// ModelMetrics accumulates performance counters from embedding calls.
type ModelMetrics struct {
	InputTokens int   `json:"input_tokens"`
	TotalTokens int   `json:"total_tokens"`
	DurationMs  int64 `json:"duration_ms"`
}
