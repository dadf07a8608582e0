package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/freightlens/resolver/pkg/logger"

	"github.com/kaptinlin/jsonrepair"
)

type snapshotEntity struct {
	CanonicalEntity
	Metadata
}

type snapshot struct {
	Entities    []snapshotEntity   `json:"entities"`
	NameChanges []NameChangeRecord `json:"name_changes"`
}

// FromSnapshot builds a Registry from a JSON snapshot document. Mildly
// malformed JSON is repaired before giving up. Entities without a name are
// dropped with a warning; entities without an ID get one assigned by New.
func FromSnapshot(data []byte, opts ...Option) (*Registry, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse registry snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &snap); err != nil {
			return nil, fmt.Errorf("failed to parse repaired registry snapshot: %w", err)
		}
		logger.Warn("Registry snapshot contained malformed JSON, parsed after repair")
	}

	entities := make([]CanonicalEntity, 0, len(snap.Entities))
	meta := make(map[string]Metadata, len(snap.Entities))
	for _, se := range snap.Entities {
		if se.Name == "" {
			logger.Warn("Dropping registry entity with empty name", "id", se.ID)
			continue
		}
		entities = append(entities, se.CanonicalEntity)
	}

	reg := New(entities, snap.NameChanges, opts...)

	for _, se := range snap.Entities {
		if se.Name == "" {
			continue
		}
		// IDs may have been assigned by New, so map metadata by name.
		if e, ok := reg.EntityByName(se.Name); ok {
			meta[e.ID] = se.Metadata
		}
	}
	if reg.meta == nil {
		reg.meta = meta
	}

	return reg, nil
}

// LoadSnapshot reads a registry snapshot from path. It never fails: a blank
// path, unreadable file or unparseable document falls back to the built-in
// seed registry so the service always starts with usable data.
func LoadSnapshot(path string, opts ...Option) *Registry {
	if path == "" {
		return Seed(opts...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read registry snapshot, using seed registry", "path", path, "error", err)
		return Seed(opts...)
	}

	reg, err := FromSnapshot(data, opts...)
	if err != nil {
		logger.Error("Failed to parse registry snapshot, using seed registry", "path", path, "error", err)
		return Seed(opts...)
	}

	logger.Info("Loaded registry snapshot", "path", path, "entities", reg.Len(), "name_changes", len(reg.changes))
	return reg
}
