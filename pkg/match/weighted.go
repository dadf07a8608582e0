package match

import "strings"

// Component weights for WeightedSimilarity. Exact equality and token set
// overlap count double because they are the strongest signals for company
// names, where word order and suffixes vary but the core tokens do not.
const (
	weightExact     = 2.0
	weightRatio     = 1.0
	weightTokenSort = 1.5
	weightTokenSet  = 2.0
	weightJaccard   = 1.5

	totalWeight = weightExact + weightRatio + weightTokenSort + weightTokenSet + weightJaccard
)

// WeightedSimilarity blends the five string metrics into a single score in
// [0, 1]. Equal strings short-circuit to 1.0 so the score stays reflexive
// even for inputs that tokenize to nothing.
func WeightedSimilarity(s1, s2 string) float64 {
	if strings.EqualFold(strings.TrimSpace(s1), strings.TrimSpace(s2)) {
		return 1.0
	}
	sum := weightExact*ExactMatch(s1, s2) +
		weightRatio*Ratio(s1, s2) +
		weightTokenSort*TokenSortRatio(s1, s2) +
		weightTokenSet*TokenSetRatio(s1, s2) +
		weightJaccard*Jaccard(s1, s2)
	return sum / totalWeight
}
