package main

import (
	"context"

	"github.com/freightlens/resolver/internal/server"
	"github.com/freightlens/resolver/internal/server/middleware"
	"github.com/freightlens/resolver/internal/util"
	"github.com/freightlens/resolver/pkg/ai"
	"github.com/freightlens/resolver/pkg/ai/ollama"
	"github.com/freightlens/resolver/pkg/ai/openai"
	"github.com/freightlens/resolver/pkg/logger"
	"github.com/freightlens/resolver/pkg/logger/console"
	"github.com/freightlens/resolver/pkg/match"
	"github.com/freightlens/resolver/pkg/registry"
	"github.com/freightlens/resolver/pkg/resolve"
)

func main() {
	util.LoadEnv()
	logger.Init(console.New(console.Params{
		Debug: util.GetEnvBool("DEBUG", false),
	}))

	reg := registry.LoadSnapshot(util.GetEnv("REGISTRY_PATH"))
	holder := registry.NewHolder(reg)

	embedder := newEmbedder()
	cache := match.NewEmbeddingCache()

	if embedder != nil && util.GetEnvBool("AI_WARM_CACHE", false) {
		go func() {
			match.WarmCache(context.Background(), embedder, cache, reg.CanonicalNames())
			logger.Info("Embedding cache warmed", "entries", cache.Len())
		}()
	}

	mapper := resolve.NewMapper(resolve.MapperParams{
		Registry:     holder,
		Embedder:     embedder,
		Cache:        cache,
		Threshold:    util.GetEnvNumeric("MATCH_THRESHOLD", 0),
		DisableFuzzy: !util.GetEnvBool("FUZZY_MATCHING", true),
		Concurrency:  int(util.GetEnvNumeric("RESOLVE_CONCURRENCY", 4)),
	})

	server.Init(&middleware.App{
		Registry: holder,
		Mapper:   mapper,
		Cache:    cache,
	})
}

func newEmbedder() ai.Embedder {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		embedder, err := ollama.NewEmbedder(ollama.NewEmbedderParams{
			Model:                 util.GetEnvString("AI_EMBED_MODEL", "nomic-embed-text"),
			BaseURL:               util.GetEnvString("AI_EMBED_URL", "http://localhost:11434"),
			APIKey:                util.GetEnv("AI_EMBED_KEY"),
			MaxConcurrentRequests: int(util.GetEnvNumeric("AI_MAX_CONCURRENT_REQUESTS", 2)),
			TimeoutMinutes:        int(util.GetEnvNumeric("AI_TIMEOUT_MINUTES", 5)),
		})
		if err != nil {
			logger.Fatal("Failed to create ollama embedder", "error", err)
		}
		return embedder
	case "openai":
		embedder, err := openai.NewEmbedder(openai.NewEmbedderParams{
			Model:                 util.GetEnvString("AI_EMBED_MODEL", "text-embedding-3-small"),
			BaseURL:               util.GetEnv("AI_EMBED_URL"),
			APIKey:                util.GetEnv("AI_EMBED_KEY"),
			MaxConcurrentRequests: int(util.GetEnvNumeric("AI_MAX_CONCURRENT_REQUESTS", 2)),
			TimeoutMinutes:        int(util.GetEnvNumeric("AI_TIMEOUT_MINUTES", 5)),
		})
		if err != nil {
			logger.Fatal("Failed to create openai embedder", "error", err)
		}
		return embedder
	default:
		logger.Info("No AI adapter configured, semantic matching disabled")
		return nil
	}
}
