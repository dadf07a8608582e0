package match

import (
	"context"
	"math"
	"sync"

	"github.com/freightlens/resolver/internal/util"
	"github.com/freightlens/resolver/pkg/ai"
	"github.com/freightlens/resolver/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const embedRetries = 2

// EmbeddingCache memoizes embedding vectors by their exact input string.
// Safe for concurrent use.
type EmbeddingCache struct {
	mu      sync.RWMutex
	vectors map[string][]float32
}

// NewEmbeddingCache creates an empty cache.
func NewEmbeddingCache() *EmbeddingCache {
	return &EmbeddingCache{vectors: make(map[string][]float32)}
}

// Get returns the cached vector for key, if present.
func (c *EmbeddingCache) Get(key string) ([]float32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vec, ok := c.vectors[key]
	return vec, ok
}

// Put stores a vector under key, replacing any existing entry.
func (c *EmbeddingCache) Put(key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vectors[key] = vec
}

// Len reports the number of cached vectors.
func (c *EmbeddingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

// embeddingFor fetches the embedding for s, consulting the cache first. A
// provider failure degrades to a zero vector so semantic comparison reports
// 0.0 instead of erroring out; the failed result is not cached, so a later
// call can still succeed.
func embeddingFor(ctx context.Context, embedder ai.Embedder, cache *EmbeddingCache, s string) []float32 {
	if cache != nil {
		if vec, ok := cache.Get(s); ok {
			return vec
		}
	}

	vec, err := util.RetryWithContext(ctx, embedRetries, func(ctx context.Context) ([]float32, error) {
		return embedder.GenerateEmbedding(ctx, []byte(s))
	})
	if err != nil {
		logger.Warn("Embedding generation failed, falling back to zero vector", "input", s, "error", err)
		return make([]float32, embedder.Dimensions())
	}

	if cache != nil {
		cache.Put(s, vec)
	}
	return vec
}

// SemanticSimilarity compares two strings by the cosine similarity of their
// embeddings, clamped to [0, 1]. Provider failures yield 0.0, never an error.
func SemanticSimilarity(ctx context.Context, embedder ai.Embedder, cache *EmbeddingCache, s1, s2 string) float64 {
	v1 := embeddingFor(ctx, embedder, cache, s1)
	v2 := embeddingFor(ctx, embedder, cache, s2)
	return cosine(v1, v2)
}

// SemanticScorer adapts SemanticSimilarity to a ScoreFunc bound to the given
// context, embedder and cache.
func SemanticScorer(ctx context.Context, embedder ai.Embedder, cache *EmbeddingCache) ScoreFunc {
	return func(s1, s2 string) float64 {
		return SemanticSimilarity(ctx, embedder, cache, s1, s2)
	}
}

// WarmCache pre-computes embeddings for the given names so the first
// resolution request does not pay the provider latency for the whole
// registry. Failures are logged per name and do not abort the warmup.
func WarmCache(ctx context.Context, embedder ai.Embedder, cache *EmbeddingCache, names []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, name := range names {
		name := name
		g.Go(func() error {
			if _, ok := cache.Get(name); ok {
				return nil
			}
			vec, err := embedder.GenerateEmbedding(ctx, []byte(name))
			if err != nil {
				logger.Warn("Cache warmup failed for name", "name", name, "error", err)
				return nil
			}
			cache.Put(name, vec)
			return nil
		})
	}
	_ = g.Wait()
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}
