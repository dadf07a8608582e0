package registry

import (
	"os"
	"path/filepath"
	"testing"
)

const validSnapshot = `{
  "entities": [
    {
      "id": "c1",
      "name": "Acme Freight LLC",
      "type": "company",
      "aliases": ["Acme", "AF"],
      "industry": "transportation",
      "contact": {"phone": "555-0100"}
    },
    {
      "name": "Beta Logistics",
      "type": "company"
    }
  ],
  "name_changes": [
    {
      "previous_name": "Acme Shipping",
      "current_name": "Acme Freight LLC",
      "entity_id": "c1",
      "change_date": "2021-03-01",
      "change_reason": "rebranding"
    }
  ]
}`

func TestFromSnapshot(t *testing.T) {
	reg, err := FromSnapshot([]byte(validSnapshot))
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 entities, got %d", reg.Len())
	}

	e, ok := reg.ExactMatch("Acme")
	if !ok || e.ID != "c1" {
		t.Fatalf("expected alias match for c1, got ok=%v e=%+v", ok, e)
	}

	meta, ok := reg.MetadataFor("c1")
	if !ok {
		t.Fatal("expected metadata for c1")
	}
	if meta.Industry != "transportation" || meta.Contact == nil || meta.Contact.Phone != "555-0100" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	// Beta Logistics had no ID; one must have been assigned.
	beta, ok := reg.EntityByName("Beta Logistics")
	if !ok || beta.ID == "" {
		t.Fatalf("expected assigned ID for Beta Logistics, got %+v", beta)
	}

	results := reg.SearchByName("Acme Shipping", 0.85)
	if len(results) != 1 || results[0].NameChange == nil {
		t.Fatalf("expected previous-name hit, got %+v", results)
	}
}

func TestFromSnapshotRepairsMalformedJSON(t *testing.T) {
	// Trailing comma, the kind of damage hand-edited snapshots pick up.
	damaged := `{"entities": [{"id": "c1", "name": "Acme Freight", "type": "company",}], "name_changes": []}`
	reg, err := FromSnapshot([]byte(damaged))
	if err != nil {
		t.Fatalf("expected repair to salvage the document: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 entity, got %d", reg.Len())
	}
}

func TestFromSnapshotGarbage(t *testing.T) {
	if _, err := FromSnapshot([]byte("\x00\x01 not json at all {{{")); err == nil {
		t.Fatal("expected an error for unrepairable input")
	}
}

func TestFromSnapshotDropsNamelessEntities(t *testing.T) {
	data := `{"entities": [{"id": "c1", "type": "company"}, {"id": "c2", "name": "Kept Corp", "type": "company"}]}`
	reg, err := FromSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected nameless entity to be dropped, got %d entities", reg.Len())
	}
}

func TestLoadSnapshotMissingFileFallsBackToSeed(t *testing.T) {
	reg := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	if reg.Len() != 6 {
		t.Fatalf("expected seed registry fallback, got %d entities", reg.Len())
	}
}

func TestLoadSnapshotEmptyPathUsesSeed(t *testing.T) {
	reg := LoadSnapshot("")
	if reg.Len() != 6 {
		t.Fatalf("expected seed registry, got %d entities", reg.Len())
	}
}

func TestLoadSnapshotFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte(validSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	reg := LoadSnapshot(path)
	if reg.Len() != 2 {
		t.Fatalf("expected 2 entities from snapshot, got %d", reg.Len())
	}
}
