// Package textsim compares free text with a bag-of-words TF-IDF model.
package textsim

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/careerbuddy/internal/vocab"
)

const maxFeatures = 1000

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Comparer computes TF-IDF cosine similarity between documents.
type Comparer struct {
	vocab vocab.Vocabulary
}

func New(v vocab.Vocabulary) *Comparer {
	if v == nil {
		v = vocab.Default()
	}
	return &Comparer{vocab: v}
}

// JobSimilarity returns the cosine similarity in [0,1] of two job descriptions.
// The model is fit on exactly the two documents. Degenerate input, such as
// text consisting only of stop words, yields 0.
func (c *Comparer) JobSimilarity(a, b string) (score float64) {
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()

	docs := [][]string{c.terms(a), c.terms(b)}
	features := selectFeatures(docs)
	if len(features) == 0 {
		return 0
	}

	idf := inverseDocumentFrequency(docs, features)
	va := weigh(docs[0], features, idf)
	vb := weigh(docs[1], features, idf)

	score = dot(va, vb)
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// terms returns unigrams and bigrams of the stop-word-filtered token stream.
func (c *Comparer) terms(text string) []string {
	tokens := make([]string, 0)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if c.vocab.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// selectFeatures keeps the most frequent terms across the corpus, ties broken alphabetically.
func selectFeatures(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			counts[term]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return index
}

// inverseDocumentFrequency uses the smoothed form ln((1+n)/(1+df)) + 1.
func inverseDocumentFrequency(docs [][]string, features map[string]int) []float64 {
	df := make([]float64, len(features))
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, term := range doc {
			idx, ok := features[term]
			if !ok || seen[idx] {
				continue
			}
			seen[idx] = true
			df[idx]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(features))
	for i := range idf {
		idf[i] = math.Log((1+n)/(1+df[i])) + 1
	}
	return idf
}

// weigh builds the L2-normalised tf-idf vector of doc.
func weigh(doc []string, features map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(features))
	for _, term := range doc {
		if idx, ok := features[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= idf[i]
		norm += vec[i] * vec[i]
	}

	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
