package registry

import (
	"github.com/freightlens/resolver/pkg/common"
	"github.com/freightlens/resolver/pkg/logger"
	"github.com/freightlens/resolver/pkg/match"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CanonicalEntity is a known organization in the registry. Name is the
// canonical form; Aliases are alternate spellings that resolve to it with
// full confidence.
type CanonicalEntity struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Aliases []string `json:"aliases,omitempty"`
}

// Metadata carries descriptive fields that ride along with a canonical
// entity but play no part in matching.
type Metadata struct {
	Industry      string              `json:"industry,omitempty"`
	Address       *common.Address     `json:"address,omitempty"`
	Contact       *common.ContactInfo `json:"contact,omitempty"`
	ParentCompany string              `json:"parent_company,omitempty"`
}

// NameChangeRecord documents that an organization was previously known under
// a different name.
type NameChangeRecord struct {
	PreviousName string `json:"previous_name"`
	CurrentName  string `json:"current_name"`
	EntityID     string `json:"entity_id"`
	ChangeDate   string `json:"change_date"`
	ChangeReason string `json:"change_reason,omitempty"`
}

// Registry is an immutable set of canonical entities and their name-change
// history. Build one with New, Seed, or LoadSnapshot; swap a new one in via
// Holder when the data changes.
type Registry struct {
	entities []CanonicalEntity
	changes  []NameChangeRecord
	meta     map[string]Metadata
	byID     map[string]int
	metric   match.ScoreFunc
}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithMetric overrides the similarity function used by FuzzyMatch and
// SearchByName. The default is match.Ratio.
func WithMetric(metric match.ScoreFunc) Option {
	return func(r *Registry) {
		r.metric = metric
	}
}

// WithMetadata attaches descriptive metadata keyed by entity ID.
func WithMetadata(meta map[string]Metadata) Option {
	return func(r *Registry) {
		r.meta = meta
	}
}

// New builds a Registry from the given entities and name-change records.
// Entities without an ID get one assigned. Duplicate IDs and name-change
// records that point at no known entity are kept but logged; resolution
// treats dangling records as inert.
func New(entities []CanonicalEntity, changes []NameChangeRecord, opts ...Option) *Registry {
	r := &Registry{
		entities: make([]CanonicalEntity, len(entities)),
		changes:  make([]NameChangeRecord, len(changes)),
		byID:     make(map[string]int, len(entities)),
		metric:   match.Ratio,
	}
	copy(r.entities, entities)
	copy(r.changes, changes)

	for _, opt := range opts {
		opt(r)
	}

	for i := range r.entities {
		if r.entities[i].ID == "" {
			r.entities[i].ID = gonanoid.Must()
		}
		if _, dup := r.byID[r.entities[i].ID]; dup {
			logger.Warn("Duplicate entity ID in registry, keeping first occurrence", "id", r.entities[i].ID)
			continue
		}
		r.byID[r.entities[i].ID] = i
	}

	for _, nc := range r.changes {
		if _, ok := r.byID[nc.EntityID]; !ok {
			logger.Warn("Name change record references unknown entity, record is inert",
				"previous_name", nc.PreviousName, "entity_id", nc.EntityID)
		}
	}

	return r
}

// Entities returns a copy of the canonical entity list.
func (r *Registry) Entities() []CanonicalEntity {
	out := make([]CanonicalEntity, len(r.entities))
	copy(out, r.entities)
	return out
}

// NameChanges returns a copy of the name-change records.
func (r *Registry) NameChanges() []NameChangeRecord {
	out := make([]NameChangeRecord, len(r.changes))
	copy(out, r.changes)
	return out
}

// EntityByID looks up an entity by its ID.
func (r *Registry) EntityByID(id string) (CanonicalEntity, bool) {
	if i, ok := r.byID[id]; ok {
		return r.entities[i], true
	}
	return CanonicalEntity{}, false
}

// MetadataFor returns the descriptive metadata for an entity ID, if any.
func (r *Registry) MetadataFor(id string) (Metadata, bool) {
	meta, ok := r.meta[id]
	return meta, ok
}

// Len reports the number of canonical entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// CanonicalNames returns the canonical names in registry order.
func (r *Registry) CanonicalNames() []string {
	names := make([]string, len(r.entities))
	for i, e := range r.entities {
		names[i] = e.Name
	}
	return names
}

// EntityByName finds the entity whose canonical name matches, ignoring case.
// Returns the first occurrence in registry order.
func (r *Registry) EntityByName(name string) (CanonicalEntity, bool) {
	for _, e := range r.entities {
		if matchesExact(e.Name, name) {
			return e, true
		}
	}
	return CanonicalEntity{}, false
}
