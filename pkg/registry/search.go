package registry

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchResult pairs an entity with its similarity score. NameChange is set
// when the hit came through a previous-name record.
type SearchResult struct {
	Entity     CanonicalEntity   `json:"entity"`
	Score      float64           `json:"score"`
	NameChange *NameChangeRecord `json:"name_change,omitempty"`
}

func matchesExact(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func entityMatchesExact(e CanonicalEntity, name string) bool {
	if matchesExact(e.Name, name) {
		return true
	}
	for _, alias := range e.Aliases {
		if matchesExact(alias, name) {
			return true
		}
	}
	return false
}

// ExactMatch finds the first entity whose canonical name or one of whose
// aliases equals name, ignoring case and surrounding whitespace.
func (r *Registry) ExactMatch(name string) (CanonicalEntity, bool) {
	for _, e := range r.entities {
		if entityMatchesExact(e, name) {
			return e, true
		}
	}
	return CanonicalEntity{}, false
}

// FuzzyMatch scores name against every canonical name and alias using the
// registry's metric and returns the best entity at or above threshold. Ties
// keep the earliest entity in registry order.
func (r *Registry) FuzzyMatch(name string, threshold float64) (CanonicalEntity, float64, bool) {
	bestIdx := -1
	bestScore := 0.0
	for i, e := range r.entities {
		score := r.metric(name, e.Name)
		for _, alias := range e.Aliases {
			if s := r.metric(name, alias); s > score {
				score = s
			}
		}
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx < 0 || bestScore < threshold {
		return CanonicalEntity{}, 0.0, false
	}
	return r.entities[bestIdx], bestScore, true
}

// SearchByName resolves name against the registry. When exact canonical or
// alias hits exist, all of them come back with score 1.0 and nothing else;
// distinct entities may share a display name, so the exact pass never stops
// at the first hit. Failing that, every exact previous-name hit returns the
// current entity with its name-change record attached. Otherwise every
// entity is fuzzy-scored over its names, aliases and previous names, and
// results at or above threshold come back sorted by descending score.
func (r *Registry) SearchByName(name string, threshold float64) []SearchResult {
	var exact []SearchResult
	for _, e := range r.entities {
		if entityMatchesExact(e, name) {
			exact = append(exact, SearchResult{Entity: e, Score: 1.0})
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var viaChange []SearchResult
	for _, nc := range r.changes {
		if !matchesExact(nc.PreviousName, name) {
			continue
		}
		e, ok := r.EntityByID(nc.EntityID)
		if !ok {
			continue
		}
		record := nc
		viaChange = append(viaChange, SearchResult{Entity: e, Score: 1.0, NameChange: &record})
	}
	if len(viaChange) > 0 {
		return viaChange
	}

	prevByID := make(map[string][]string)
	for _, nc := range r.changes {
		prevByID[nc.EntityID] = append(prevByID[nc.EntityID], nc.PreviousName)
	}

	var results []SearchResult
	for _, e := range r.entities {
		score := r.metric(name, e.Name)
		for _, alias := range e.Aliases {
			if s := r.metric(name, alias); s > score {
				score = s
			}
		}
		for _, prev := range prevByID[e.ID] {
			if s := r.metric(name, prev); s > score {
				score = s
			}
		}
		if score >= threshold {
			results = append(results, SearchResult{Entity: e, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Suggest returns up to limit canonical names that loosely resemble name,
// ranked by edit distance. Used to offer alternatives when resolution finds
// no confident match.
func (r *Registry) Suggest(name string, limit int) []string {
	candidates := make([]string, 0, len(r.entities)*2)
	for _, e := range r.entities {
		candidates = append(candidates, e.Name)
		candidates = append(candidates, e.Aliases...)
	}

	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)

	seen := make(map[string]struct{}, limit)
	var out []string
	for _, rank := range ranks {
		key := strings.ToLower(rank.Target)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rank.Target)
		if len(out) >= limit {
			break
		}
	}
	return out
}
