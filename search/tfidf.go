package search

import (
	"math"
	"sort"

	"github.com/poiesic/lectern/core"
)

// vectorSpace is a TF-IDF representation of one document collection.
// It is built fresh for every search call so that it always reflects the
// current record collection; it is never shared across calls.
type vectorSpace struct {
	terms     []string       // vocabulary in sorted order
	termIndex map[string]int // term -> dense vector index
	idf       []float64      // per-term inverse document frequency
}

// newVectorSpace fits a TF-IDF vocabulary over the documents.
// Stop words are excluded by the tokenizer. IDF uses the smoothed form
// ln((1+N)/(1+df)) + 1 so no term gets a zero or infinite weight.
func newVectorSpace(documents []string) *vectorSpace {
	docFrequencies := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			if !seen[term] {
				seen[term] = true
				docFrequencies[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFrequencies))
	for term := range docFrequencies {
		terms = append(terms, term)
	}
	// Sorted vocabulary keeps vector layout, and therefore every float
	// accumulation order, independent of map iteration.
	sort.Strings(terms)

	termIndex := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	total := float64(len(documents))
	for i, term := range terms {
		termIndex[term] = i
		idf[i] = math.Log((1+total)/(1+float64(docFrequencies[term]))) + 1
	}

	return &vectorSpace{
		terms:     terms,
		termIndex: termIndex,
		idf:       idf,
	}
}

// vectorize computes the L2-normalized TF-IDF vector for a text within
// this space. Terms outside the fitted vocabulary are ignored.
func (vs *vectorSpace) vectorize(text string) []float64 {
	vector := make([]float64, len(vs.terms))
	for _, term := range tokenize(text) {
		if i, ok := vs.termIndex[term]; ok {
			vector[i]++
		}
	}

	var norm float64
	for i := range vector {
		vector[i] *= vs.idf[i]
		norm += vector[i] * vector[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

// cosine computes cosine similarity between two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// RankBySimilarity ranks profiles by TF-IDF cosine similarity to the
// query and returns the topN best matches with their scores.
//
// The vector space is rebuilt from the given collection on every call.
// The sort is stable and descending, so profiles with equal similarity
// keep their relative collection order; the result is truncated to topN
// or to the collection size, whichever is smaller. Identical inputs
// always produce identical output.
func RankBySimilarity(profiles []*core.Profile, query string, topN int) []*core.SearchResult {
	if len(profiles) == 0 || topN <= 0 {
		return []*core.SearchResult{}
	}

	documents := make([]string, len(profiles))
	for i, profile := range profiles {
		documents[i] = profile.FlattenedText()
	}

	space := newVectorSpace(documents)
	queryVector := space.vectorize(query)

	results := make([]*core.SearchResult, len(profiles))
	for i, profile := range profiles {
		results[i] = &core.SearchResult{
			Profile: profile,
			Score:   cosine(queryVector, space.vectorize(documents[i])),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
