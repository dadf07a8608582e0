package registry

import "testing"

func TestExactMatchCanonicalAndAlias(t *testing.T) {
	reg := Seed()

	tests := []struct {
		name   string
		wantID string
	}{
		{"Bennett Truck Transport, LLC", "comp001"},
		{"bennett truck transport, llc", "comp001"},
		{"STC", "comp004"},
		{"stc", "comp004"},
		{"GT Express", "comp005"},
		{"  Linbis  ", "comp006"},
	}
	for _, tt := range tests {
		e, ok := reg.ExactMatch(tt.name)
		if !ok {
			t.Fatalf("ExactMatch(%q) found nothing", tt.name)
		}
		if e.ID != tt.wantID {
			t.Fatalf("ExactMatch(%q) = %q, want %q", tt.name, e.ID, tt.wantID)
		}
	}

	if _, ok := reg.ExactMatch("Unknown Carrier"); ok {
		t.Fatal("expected no exact match for unknown name")
	}
}

func TestSearchByNameExactShortCircuit(t *testing.T) {
	reg := Seed()
	results := reg.SearchByName("Road Masters", 0.85)
	if len(results) != 1 {
		t.Fatalf("expected single exact result, got %d", len(results))
	}
	if results[0].Entity.ID != "comp002" || results[0].Score != 1.0 {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if results[0].NameChange != nil {
		t.Fatal("exact alias hit should not carry a name change")
	}
}

func TestSearchByNameReturnsAllExactHits(t *testing.T) {
	reg := New([]CanonicalEntity{
		{ID: "e1", Name: "Acme Logistics", Type: "company"},
		{ID: "e2", Name: "Acme Logistics", Type: "company"},
		{ID: "e3", Name: "Unrelated Corp", Type: "company"},
	}, nil)

	results := reg.SearchByName("Acme Logistics", 0.85)
	if len(results) != 2 {
		t.Fatalf("expected both exact matches returned, got %d", len(results))
	}
	ids := map[string]bool{}
	for _, r := range results {
		if r.Score != 1.0 {
			t.Fatalf("exact hit should score 1.0, got %v", r.Score)
		}
		ids[r.Entity.ID] = true
	}
	if !ids["e1"] || !ids["e2"] {
		t.Fatalf("expected e1 and e2, got %v", ids)
	}
}

func TestSearchByNameReturnsAllNameChangeHits(t *testing.T) {
	reg := New(
		[]CanonicalEntity{
			{ID: "e1", Name: "First Corp", Type: "company"},
			{ID: "e2", Name: "Second Corp", Type: "company"},
		},
		[]NameChangeRecord{
			{PreviousName: "Old Name", CurrentName: "First Corp", EntityID: "e1", ChangeDate: "2019-01-01"},
			{PreviousName: "Old Name", CurrentName: "Second Corp", EntityID: "e2", ChangeDate: "2021-01-01"},
		},
	)

	results := reg.SearchByName("Old Name", 0.85)
	if len(results) != 2 {
		t.Fatalf("expected both name-change hits returned, got %d", len(results))
	}
	for _, r := range results {
		if r.NameChange == nil || r.NameChange.PreviousName != "Old Name" {
			t.Fatalf("expected attached name change record, got %+v", r)
		}
		if r.Score != 1.0 {
			t.Fatalf("name-change hit should score 1.0, got %v", r.Score)
		}
	}
	if results[0].Entity.ID == results[1].Entity.ID {
		t.Fatal("expected two distinct entities")
	}
}

func TestSearchByNamePreviousName(t *testing.T) {
	reg := Seed()
	results := reg.SearchByName("Steve's Trucking", 0.85)
	if len(results) != 1 {
		t.Fatalf("expected single result, got %d", len(results))
	}
	r := results[0]
	if r.Entity.ID != "comp004" || r.Score != 1.0 {
		t.Fatalf("unexpected result: %+v", r)
	}
	if r.NameChange == nil || r.NameChange.PreviousName != "Steve's Trucking" {
		t.Fatalf("expected attached name change record, got %+v", r.NameChange)
	}
	if r.NameChange.ChangeReason != "rebranding" {
		t.Fatalf("unexpected change reason: %q", r.NameChange.ChangeReason)
	}
}

func TestSearchByNameFuzzySorted(t *testing.T) {
	reg := Seed()
	results := reg.SearchByName("Steve Trucking Co.", 0.5)
	if len(results) == 0 {
		t.Fatal("expected fuzzy results")
	}
	if results[0].Entity.ID != "comp004" {
		t.Fatalf("expected comp004 first, got %q", results[0].Entity.ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted by descending score at %d", i)
		}
	}
}

func TestSearchByNameDanglingRecordSkipped(t *testing.T) {
	reg := New(
		[]CanonicalEntity{{ID: "e1", Name: "Real Corp", Type: "company"}},
		[]NameChangeRecord{{PreviousName: "Ghost Corp", CurrentName: "Gone Corp", EntityID: "missing"}},
	)
	results := reg.SearchByName("Ghost Corp", 0.85)
	for _, r := range results {
		if r.NameChange != nil {
			t.Fatalf("dangling record should be inert, got %+v", r)
		}
	}
}

func TestFuzzyMatch(t *testing.T) {
	reg := Seed()

	// Edit distance 5 over 22 runes against the canonical name.
	e, score, ok := reg.FuzzyMatch("Steve Trucking Co.", 0.70)
	if !ok {
		t.Fatal("expected a fuzzy match at threshold 0.70")
	}
	if e.ID != "comp004" {
		t.Fatalf("expected comp004, got %q", e.ID)
	}
	if score < 0.70 || score > 1.0 {
		t.Fatalf("score %v out of expected range", score)
	}

	if _, _, ok := reg.FuzzyMatch("Acme Completely Unrelated Corp", 0.85); ok {
		t.Fatal("expected no fuzzy match for unrelated name")
	}
}

func TestFuzzyMatchConsidersAliases(t *testing.T) {
	reg := Seed()
	e, _, ok := reg.FuzzyMatch("RM Transprt", 0.8)
	if !ok {
		t.Fatal("expected alias-driven fuzzy match")
	}
	if e.ID != "comp002" {
		t.Fatalf("expected comp002, got %q", e.ID)
	}
}

func TestSuggest(t *testing.T) {
	reg := Seed()
	suggestions := reg.Suggest("Bennett", 5)
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for Bennett")
	}
	if len(suggestions) > 5 {
		t.Fatalf("expected at most 5 suggestions, got %d", len(suggestions))
	}
	found := false
	for _, s := range suggestions {
		if s == "Bennett" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the Bennett alias among suggestions, got %v", suggestions)
	}
}

func TestSuggestUnknownName(t *testing.T) {
	reg := Seed()
	suggestions := reg.Suggest("zzzzqqqq", 5)
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions for gibberish, got %v", suggestions)
	}
}
