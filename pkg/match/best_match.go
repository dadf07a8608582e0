package match

// ScoreFunc scores the similarity of two strings in [0, 1].
type ScoreFunc func(s1, s2 string) float64

// Match is a scored candidate returned by FindBestMatch.
type Match struct {
	Candidate string
	Score     float64
	Index     int
}

// FindBestMatch scores query against every candidate and returns the highest
// scorer at or above threshold. Ties keep the earliest candidate, so results
// are deterministic for a fixed candidate order.
func FindBestMatch(query string, candidates []string, score ScoreFunc, threshold float64) (Match, bool) {
	best := Match{Index: -1}
	for i, c := range candidates {
		if s := score(query, c); s > best.Score || best.Index < 0 {
			best = Match{Candidate: c, Score: s, Index: i}
		}
	}
	if best.Index < 0 || best.Score < threshold {
		return Match{Index: -1}, false
	}
	return best, true
}
