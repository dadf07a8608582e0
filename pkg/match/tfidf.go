package match

import "math"

// TFIDFSimilarity builds one TF-IDF vector space over the union of the two
// name lists and returns the len(a) x len(b) cosine similarity matrix
// between them. Document frequencies are smoothed so an unseen vocabulary
// never divides by zero, and each vector is L2-normalized before the dot
// products.
func TFIDFSimilarity(a, b []string) [][]float64 {
	combined := make([]string, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)

	vectors := tfidfVectors(combined)

	sim := make([][]float64, len(a))
	for i := range a {
		sim[i] = make([]float64, len(b))
		for j := range b {
			sim[i][j] = dotFloat64(vectors[i], vectors[len(a)+j])
		}
	}
	return sim
}

func tfidfVectors(names []string) [][]float64 {
	n := len(names)
	docs := make([][]string, n)
	vocab := make(map[string]int)
	df := make(map[string]int)
	for i, name := range names {
		docs[i] = Tokenize(name)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, t := range docs[i] {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	idf := make(map[string]float64, len(vocab))
	for t, count := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+count)) + 1
	}

	vectors := make([][]float64, n)
	for i, tokens := range docs {
		vec := make([]float64, len(vocab))
		for _, t := range tokens {
			vec[vocab[t]] += idf[t]
		}
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func dotFloat64(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
