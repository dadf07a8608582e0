package registry

import "testing"

func TestSeedRegistry(t *testing.T) {
	reg := Seed()
	if reg.Len() != 6 {
		t.Fatalf("expected 6 seed entities, got %d", reg.Len())
	}
	if len(reg.NameChanges()) != 3 {
		t.Fatalf("expected 3 seed name changes, got %d", len(reg.NameChanges()))
	}

	e, ok := reg.EntityByID("comp004")
	if !ok {
		t.Fatal("expected comp004 in seed registry")
	}
	if e.Name != "Steve Trucking Company" {
		t.Fatalf("unexpected comp004 name: %q", e.Name)
	}
}

func TestNewAssignsMissingIDs(t *testing.T) {
	reg := New([]CanonicalEntity{
		{Name: "No ID Corp", Type: "company"},
		{ID: "fixed", Name: "Fixed Corp", Type: "company"},
	}, nil)

	entities := reg.Entities()
	if entities[0].ID == "" {
		t.Fatal("expected an assigned ID for the first entity")
	}
	if entities[1].ID != "fixed" {
		t.Fatalf("existing ID should be kept, got %q", entities[1].ID)
	}
	if _, ok := reg.EntityByID(entities[0].ID); !ok {
		t.Fatal("assigned ID should be resolvable")
	}
}

func TestNewCopiesInput(t *testing.T) {
	entities := []CanonicalEntity{{ID: "e1", Name: "Original", Type: "company"}}
	reg := New(entities, nil)

	entities[0].Name = "Mutated"
	if e, _ := reg.EntityByID("e1"); e.Name != "Original" {
		t.Fatalf("registry should not observe caller mutations, got %q", e.Name)
	}
}

func TestEntityByName(t *testing.T) {
	reg := Seed()
	e, ok := reg.EntityByName("bennett truck transport, llc")
	if !ok {
		t.Fatal("expected case-insensitive canonical name lookup")
	}
	if e.ID != "comp001" {
		t.Fatalf("unexpected entity: %q", e.ID)
	}
	if _, ok := reg.EntityByName("Bennett"); ok {
		t.Fatal("EntityByName should not match aliases")
	}
}

func TestCanonicalNamesOrder(t *testing.T) {
	reg := Seed()
	names := reg.CanonicalNames()
	if len(names) != 6 {
		t.Fatalf("expected 6 names, got %d", len(names))
	}
	if names[0] != "Bennett Truck Transport, LLC" {
		t.Fatalf("expected registry order, got %q first", names[0])
	}
}

func TestMetadataFor(t *testing.T) {
	reg := Seed()
	meta, ok := reg.MetadataFor("comp006")
	if !ok {
		t.Fatal("expected metadata for comp006")
	}
	if meta.Contact == nil || meta.Contact.Email != "info@linbis.com" {
		t.Fatalf("unexpected contact metadata: %+v", meta.Contact)
	}
	if _, ok := reg.MetadataFor("nope"); ok {
		t.Fatal("expected no metadata for unknown ID")
	}
}

func TestWithMetric(t *testing.T) {
	constant := func(string, string) float64 { return 0.99 }
	reg := New([]CanonicalEntity{{ID: "e1", Name: "Anything", Type: "company"}}, nil, WithMetric(constant))

	e, score, ok := reg.FuzzyMatch("whatever", 0.9)
	if !ok || e.ID != "e1" {
		t.Fatalf("expected custom metric to drive matching, got ok=%v entity=%+v", ok, e)
	}
	if score != 0.99 {
		t.Fatalf("expected score 0.99, got %v", score)
	}
}

func TestHolderSwap(t *testing.T) {
	first := Seed()
	holder := NewHolder(first)
	if holder.Load() != first {
		t.Fatal("holder should return the initial registry")
	}

	second := New([]CanonicalEntity{{ID: "x", Name: "X Corp", Type: "company"}}, nil)
	holder.Swap(second)
	if holder.Load() != second {
		t.Fatal("holder should return the swapped registry")
	}
	if holder.Load().Len() != 1 {
		t.Fatalf("expected 1 entity after swap, got %d", holder.Load().Len())
	}
}
