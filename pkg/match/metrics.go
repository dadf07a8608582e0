package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// matchTokens lowercases and splits on runs of non-alphanumeric characters,
// keeping every token. The ratio metrics compare full token lists; the
// stopword-dropping Tokenize is reserved for Jaccard and TF-IDF.
func matchTokens(s string) []string {
	return strings.Fields(nonAlnum.ReplaceAllString(strings.ToLower(s), " "))
}

// ExactMatch reports 1.0 when the two strings are equal ignoring case and
// surrounding whitespace, 0.0 otherwise.
func ExactMatch(s1, s2 string) float64 {
	if strings.EqualFold(strings.TrimSpace(s1), strings.TrimSpace(s2)) {
		return 1.0
	}
	return 0.0
}

// Ratio is the normalized Levenshtein similarity of the two strings,
// case-insensitive, in [0, 1].
func Ratio(s1, s2 string) float64 {
	a := strings.ToLower(strings.TrimSpace(s1))
	b := strings.ToLower(strings.TrimSpace(s2))
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}

func sortedTokens(s string) []string {
	tokens := matchTokens(s)
	sort.Strings(tokens)
	return tokens
}

// TokenSortRatio compares the two strings after tokenizing and sorting their
// tokens, which makes it insensitive to word order.
func TokenSortRatio(s1, s2 string) float64 {
	return Ratio(strings.Join(sortedTokens(s1), " "), strings.Join(sortedTokens(s2), " "))
}

func fieldSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// TokenSetRatio compares the sorted token intersection against each side's
// full sorted token set and returns the best of the three pairwise ratios.
// It scores 1.0 when one name's tokens are a subset of the other's, so a
// name with an extra suffix word still matches its shorter form.
func TokenSetRatio(s1, s2 string) float64 {
	set1 := fieldSet(matchTokens(s1))
	set2 := fieldSet(matchTokens(s2))

	var intersection, diff1, diff2 []string
	for t := range set1 {
		if _, ok := set2[t]; ok {
			intersection = append(intersection, t)
		} else {
			diff1 = append(diff1, t)
		}
	}
	for t := range set2 {
		if _, ok := set1[t]; !ok {
			diff2 = append(diff2, t)
		}
	}
	sort.Strings(intersection)
	sort.Strings(diff1)
	sort.Strings(diff2)

	t0 := strings.Join(intersection, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(diff1, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(diff2, " "))

	best := Ratio(t0, t1)
	if r := Ratio(t0, t2); r > best {
		best = r
	}
	if r := Ratio(t1, t2); r > best {
		best = r
	}
	return best
}

// Jaccard is the token set overlap of the two strings, |A∩B| / |A∪B|.
// An empty union scores 0.0.
func Jaccard(s1, s2 string) float64 {
	set1 := fieldSet(Tokenize(s1))
	set2 := fieldSet(Tokenize(s2))

	intersection := 0
	for t := range set1 {
		if _, ok := set2[t]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
