package resolve

import (
	"context"
	"strings"

	"github.com/freightlens/resolver/pkg/ai"
	"github.com/freightlens/resolver/pkg/common"
	"github.com/freightlens/resolver/pkg/logger"
	"github.com/freightlens/resolver/pkg/match"
	"github.com/freightlens/resolver/pkg/registry"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultThreshold is the minimum similarity a fuzzy or name-change hit
	// needs to count as a match.
	DefaultThreshold = 0.85

	// nameChangeDiscount is applied to the confidence of matches made
	// through a previous name, since the evidence is one step removed from
	// the canonical name.
	nameChangeDiscount = 0.9

	// semanticRelaxation lowers the threshold for the semantic stage, which
	// scores on meaning rather than spelling.
	semanticRelaxation = 0.1

	defaultConcurrency = 4
)

// MapperParams configures a Mapper.
type MapperParams struct {
	Registry *registry.Holder

	// Embedder enables the semantic stage. Nil disables it.
	Embedder ai.Embedder
	Cache    *match.EmbeddingCache

	// Threshold overrides DefaultThreshold when > 0.
	Threshold float64

	// DisableFuzzy skips the fuzzy stage, leaving exact, name-change and
	// semantic matching.
	DisableFuzzy bool

	// Concurrency bounds parallel resolutions in MapEntities.
	Concurrency int
}

type stage func(ctx context.Context, reg *registry.Registry, name string) (MappingResult, bool)

// Mapper resolves candidate entities against a canonical registry through a
// short-circuiting stage list: exact, name-change, fuzzy, semantic. The
// first stage that produces a confident match wins.
type Mapper struct {
	holder      *registry.Holder
	threshold   float64
	concurrency int
	stages      []stage
}

// NewMapper builds a Mapper from params. Registry is required; everything
// else has working defaults.
func NewMapper(params MapperParams) *Mapper {
	threshold := params.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	m := &Mapper{
		holder:      params.Registry,
		threshold:   threshold,
		concurrency: concurrency,
	}

	m.stages = append(m.stages, m.exactStage, m.nameChangeStage)
	if !params.DisableFuzzy {
		m.stages = append(m.stages, m.fuzzyStage)
	}
	if params.Embedder != nil {
		cache := params.Cache
		if cache == nil {
			cache = match.NewEmbeddingCache()
		}
		m.stages = append(m.stages, m.semanticStage(params.Embedder, cache))
	}

	return m
}

// Threshold reports the configured match threshold.
func (m *Mapper) Threshold() float64 {
	return m.threshold
}

// MapEntity resolves a single candidate. Blank names and non-company kinds
// pass through as no_match without touching the registry. The registry is
// loaded once per call, so a concurrent registry swap cannot split a single
// resolution across two datasets.
func (m *Mapper) MapEntity(ctx context.Context, entity common.Entity) MappingResult {
	name := strings.TrimSpace(entity.Name)
	if name == "" || !entity.Kind.Mappable() {
		return noMatch(entity.Name)
	}

	reg := m.holder.Load()
	for _, s := range m.stages {
		if res, ok := s(ctx, reg, name); ok {
			res.OriginalName = entity.Name
			logger.Debug("Resolved entity", "name", entity.Name, "method", res.Method,
				"entity_id", res.MatchedEntityID, "confidence", res.Confidence)
			return res
		}
	}
	return noMatch(entity.Name)
}

// MapEntities resolves a batch concurrently, preserving input order in the
// returned slice.
func (m *Mapper) MapEntities(ctx context.Context, entities []common.Entity) []MappingResult {
	results := make([]MappingResult, len(entities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i, entity := range entities {
		i, entity := i, entity
		g.Go(func() error {
			results[i] = m.MapEntity(ctx, entity)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (m *Mapper) exactStage(_ context.Context, reg *registry.Registry, name string) (MappingResult, bool) {
	e, ok := reg.ExactMatch(name)
	if !ok {
		return MappingResult{}, false
	}
	return MappingResult{
		MatchedEntityID:   e.ID,
		MatchedEntityName: e.Name,
		Confidence:        1.0,
		Method:            MethodExact,
	}, true
}

func (m *Mapper) nameChangeStage(_ context.Context, reg *registry.Registry, name string) (MappingResult, bool) {
	for _, nc := range reg.NameChanges() {
		sim := match.WeightedSimilarity(name, nc.PreviousName)
		if sim < m.threshold {
			continue
		}
		e, ok := reg.EntityByID(nc.EntityID)
		if !ok {
			// Dangling record, skip rather than fabricate a match.
			continue
		}
		return MappingResult{
			MatchedEntityID:    e.ID,
			MatchedEntityName:  e.Name,
			Confidence:         sim * nameChangeDiscount,
			Method:             MethodNameChange,
			NameChangeDetected: true,
			NameChange: &NameChange{
				PreviousName: nc.PreviousName,
				CurrentName:  nc.CurrentName,
				ChangeDate:   nc.ChangeDate,
				ChangeReason: nc.ChangeReason,
			},
		}, true
	}
	return MappingResult{}, false
}

// fuzzyStage first scores the blended metric against canonical names, which
// rewards token overlap. When that misses, it falls back to plain edit
// distance over names and aliases, which catches close spellings whose token
// sets diverge ("Steve Trucking Co." versus "Steve Trucking Company").
func (m *Mapper) fuzzyStage(_ context.Context, reg *registry.Registry, name string) (MappingResult, bool) {
	if best, ok := match.FindBestMatch(name, reg.CanonicalNames(), match.WeightedSimilarity, m.threshold); ok {
		if e, found := reg.EntityByName(best.Candidate); found {
			return MappingResult{
				MatchedEntityID:   e.ID,
				MatchedEntityName: e.Name,
				Confidence:        best.Score,
				Method:            MethodFuzzy,
			}, true
		}
	}

	if e, score, ok := reg.FuzzyMatch(name, m.threshold); ok {
		return MappingResult{
			MatchedEntityID:   e.ID,
			MatchedEntityName: e.Name,
			Confidence:        score,
			Method:            MethodFuzzy,
		}, true
	}

	return MappingResult{}, false
}

func (m *Mapper) semanticStage(embedder ai.Embedder, cache *match.EmbeddingCache) stage {
	return func(ctx context.Context, reg *registry.Registry, name string) (MappingResult, bool) {
		scorer := match.SemanticScorer(ctx, embedder, cache)
		threshold := m.threshold - semanticRelaxation

		best, ok := match.FindBestMatch(name, reg.CanonicalNames(), scorer, threshold)
		if !ok {
			return MappingResult{}, false
		}
		e, found := reg.EntityByName(best.Candidate)
		if !found {
			return MappingResult{}, false
		}
		return MappingResult{
			MatchedEntityID:   e.ID,
			MatchedEntityName: e.Name,
			Confidence:        best.Score,
			Method:            MethodSemantic,
		}, true
	}
}

func noMatch(name string) MappingResult {
	return MappingResult{
		OriginalName: name,
		Confidence:   0.0,
		Method:       MethodNoMatch,
	}
}
