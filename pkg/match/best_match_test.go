package match

import "testing"

func TestFindBestMatch(t *testing.T) {
	candidates := []string{
		"Bennett Truck Transport, LLC",
		"Road Masters Transportation",
		"Steve Trucking Company",
	}

	best, ok := FindBestMatch("Steve Trucking Company", candidates, WeightedSimilarity, 0.85)
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Candidate != "Steve Trucking Company" || best.Index != 2 {
		t.Fatalf("unexpected best match: %+v", best)
	}
	if best.Score != 1.0 {
		t.Fatalf("expected score 1.0, got %v", best.Score)
	}
}

func TestFindBestMatchBelowThreshold(t *testing.T) {
	candidates := []string{"Bennett Truck Transport, LLC"}
	if _, ok := FindBestMatch("completely unrelated", candidates, WeightedSimilarity, 0.85); ok {
		t.Fatal("expected no match below threshold")
	}
}

func TestFindBestMatchEmptyCandidates(t *testing.T) {
	if _, ok := FindBestMatch("anything", nil, WeightedSimilarity, 0.0); ok {
		t.Fatal("expected no match for empty candidate list")
	}
}

func TestFindBestMatchTieKeepsFirst(t *testing.T) {
	constant := func(string, string) float64 { return 0.9 }
	candidates := []string{"first", "second", "third"}

	best, ok := FindBestMatch("query", candidates, constant, 0.5)
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Index != 0 || best.Candidate != "first" {
		t.Fatalf("tie should keep earliest candidate, got %+v", best)
	}
}

func TestFindBestMatchDeterministic(t *testing.T) {
	candidates := []string{"alpha corp", "alpha corporation", "alpha company"}
	first, ok := FindBestMatch("alpha co", candidates, WeightedSimilarity, 0.0)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 10; i++ {
		got, _ := FindBestMatch("alpha co", candidates, WeightedSimilarity, 0.0)
		if got.Index != first.Index {
			t.Fatalf("FindBestMatch not deterministic: index %d vs %d", got.Index, first.Index)
		}
	}
}
