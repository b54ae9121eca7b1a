package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenRegex splits text on anything that is not a letter, digit, underscore
// or dash. Compiled once at package initialization.
var tokenRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// stopWords are filtered out before n-gram construction. A compact english
// list; enough for keyword-style health questions.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "all", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "did", "do", "does",
		"doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "him",
		"his", "how", "i", "if", "in", "into", "is", "it", "its", "just",
		"me", "more", "most", "my", "no", "nor", "not", "now", "of", "off",
		"on", "once", "only", "or", "other", "our", "out", "over", "own",
		"same", "she", "should", "so", "some", "such", "than", "that", "the",
		"their", "them", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom",
		"why", "will", "with", "you", "your",
	} {
		stopWords[w] = struct{}{}
	}
}

// vector is a sparse term-index -> weight map, L2-normalized after transform
// so cosine similarity reduces to a dot product.
type vector map[int]float64

// vectorizer is a TF-IDF transform over unigrams and bigrams, fitted once
// against the static corpus and read-only afterwards.
type vectorizer struct {
	vocab       map[string]int
	idf         []float64
	maxFeatures int
}

func newVectorizer(maxFeatures int) *vectorizer {
	return &vectorizer{maxFeatures: maxFeatures}
}

// fit builds the vocabulary and inverse document frequencies from the corpus
// documents. When the n-gram count exceeds maxFeatures, the most document-
// frequent terms are kept, ties broken alphabetically for determinism.
func (v *vectorizer) fit(docs []string) {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range ngrams(doc) {
			seen[term] = struct{}{}
		}
		for term := range seen {
			docFreq[term]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	total := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF; keeps corpus-wide terms from zeroing out.
		v.idf[i] = math.Log((1+total)/(1+float64(docFreq[term]))) + 1
	}
}

// transform maps text into the fitted vector space. Terms outside the
// vocabulary are dropped. The result is L2-normalized; an empty result
// (all terms unknown) is returned as-is and scores zero everywhere.
func (v *vectorizer) transform(text string) vector {
	counts := make(map[int]float64)
	for _, term := range ngrams(text) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx, count := range counts {
		weighted := count * v.idf[idx]
		counts[idx] = weighted
		norm += weighted * weighted
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			counts[idx] /= norm
		}
	}
	return counts
}

// dot computes the cosine similarity of two L2-normalized sparse vectors.
func dot(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, weight := range a {
		sum += weight * b[idx]
	}
	return sum
}

// ngrams tokenizes text and emits unigrams plus adjacent bigrams.
func ngrams(text string) []string {
	tokens := tokenize(text)
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// tokenize lowercases, splits on non-word characters and drops stop words
// and single-character fragments.
func tokenize(text string) []string {
	var tokens []string
	for _, token := range tokenRegex.Split(strings.ToLower(text), -1) {
		if len(token) < 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
