// Package retrieval answers general health questions by TF-IDF nearest-
// neighbor lookup over a fixed question/answer corpus.
package retrieval

import (
	"log"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/healthnest/healthnest-be/internal/knowledge"
)

const (
	// DefaultThreshold is the minimum cosine similarity for a corpus match.
	DefaultThreshold = 0.10

	defaultMaxFeatures = 500
	defaultCacheSize   = 512

	fallbackAnswer = "I'm not sure about that. Could you rephrase your question or ask about nutrition, fitness, BMI, blood pressure, pregnancy, or women's health?"
	errorAnswer    = "Sorry, the Q&A model is not available at the moment."
)

// Result is the outcome of a retrieval lookup.
type Result struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// Options tune the engine. Zero values select the defaults.
type Options struct {
	Threshold   float64
	MaxFeatures int
	CacheSize   int
}

// Engine holds the corpus, its fitted vector space and a result cache.
// Everything except the cache is immutable after New, and the cache is
// internally synchronized, so the engine is safe for concurrent use.
type Engine struct {
	corpus    []knowledge.QAEntry
	vec       *vectorizer
	vectors   []vector
	threshold float64
	cache     *lru.Cache[string, Result]
	available bool
}

// New fits the vector space over the corpus questions. An empty corpus
// produces an unavailable engine whose Retrieve always returns the
// service-error result; it never fails outright.
func New(corpus []knowledge.QAEntry, opts Options) *Engine {
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxFeatures == 0 {
		opts.MaxFeatures = defaultMaxFeatures
	}
	if opts.CacheSize == 0 {
		opts.CacheSize = defaultCacheSize
	}

	e := &Engine{corpus: corpus, threshold: opts.Threshold}

	cache, err := lru.New[string, Result](opts.CacheSize)
	if err != nil {
		log.Printf("Warning: retrieval cache disabled: %v", err)
	} else {
		e.cache = cache
	}

	if len(corpus) == 0 {
		log.Printf("Warning: retrieval corpus is empty, Q&A disabled")
		return e
	}

	questions := make([]string, len(corpus))
	for i, entry := range corpus {
		questions[i] = entry.Question
	}

	e.vec = newVectorizer(opts.MaxFeatures)
	e.vec.fit(questions)
	e.vectors = make([]vector, len(questions))
	for i, q := range questions {
		e.vectors[i] = e.vec.transform(q)
	}
	e.available = true

	log.Printf("Retrieval engine ready: %d questions, %d vocabulary terms", len(questions), len(e.vec.vocab))
	return e
}

// Available reports whether the corpus loaded and the vector space is fitted.
func (e *Engine) Available() bool {
	return e.available
}

// CorpusSize returns the number of corpus entries.
func (e *Engine) CorpusSize() int {
	return len(e.corpus)
}

// VocabularySize returns the number of fitted vocabulary terms.
func (e *Engine) VocabularySize() int {
	if e.vec == nil {
		return 0
	}
	return len(e.vec.vocab)
}

// CacheLen returns the number of cached retrieval results.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Retrieve finds the corpus question most similar to the message. Above the
// confidence threshold it returns the paired answer and category with the
// similarity as confidence; below it, a fixed fallback with confidence 0.
// Never returns an error: an unavailable engine degrades to a fixed
// service-error answer.
func (e *Engine) Retrieve(message string) Result {
	if !e.available {
		return Result{Answer: errorAnswer, Confidence: 0, Category: "error"}
	}

	key := strings.ToLower(strings.TrimSpace(message))
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	query := e.vec.transform(message)

	bestIdx, bestScore := -1, 0.0
	for i, qv := range e.vectors {
		// Strict comparison keeps the arg-max stable: ties go to the
		// lowest index.
		if score := dot(query, qv); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	var result Result
	if bestIdx >= 0 && bestScore > e.threshold {
		entry := e.corpus[bestIdx]
		result = Result{Answer: entry.Answer, Confidence: bestScore, Category: entry.Category}
	} else {
		result = Result{Answer: fallbackAnswer, Confidence: 0, Category: "unknown"}
	}

	if e.cache != nil {
		e.cache.Add(key, result)
	}
	return result
}
