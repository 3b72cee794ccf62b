package features

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"
)

var (
	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = errors.New("vectorizer is not fitted")
	// ErrAlreadyFitted guards the frozen-vocabulary contract: refitting
	// would silently invalidate any model trained on the old vocabulary.
	ErrAlreadyFitted = errors.New("vectorizer is already fitted")
)

// Vectorizer converts normalized text into TF-IDF weighted bag-of-words
// vectors over a vocabulary capped at MaxFeatures terms. The vocabulary is
// fit once over the full corpus and frozen; the same fitted instance must be
// reused for any later transform.
//
// Fields are exported for gob serialization into the model artifact.
type Vectorizer struct {
	MaxFeatures int
	Vocabulary  map[string]int
	IDF         []float64
	Documents   int
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

func (v *Vectorizer) Fitted() bool {
	return v.Vocabulary != nil
}

// Fit builds the vocabulary from the corpus: the MaxFeatures terms with the
// highest corpus-wide term frequency, ties broken lexicographically so that
// repeated fits on the same corpus are identical. IDF is smoothed:
// ln((1+docs)/(1+df)) + 1.
func (v *Vectorizer) Fit(corpus []string) error {
	if v.Fitted() {
		return fmt.Errorf("[Vectorizer] %w", ErrAlreadyFitted)
	}

	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range strings.Fields(doc) {
			termFreq[term]++
			if !seen[term] {
				docFreq[term]++
				seen[term] = true
			}
		}
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.Documents = len(corpus)
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log(float64(1+v.Documents)/float64(1+docFreq[term])) + 1
	}

	slog.Info("[Vectorizer] Vocabulary fitted",
		slog.Int("documents", v.Documents),
		slog.Int("vocabulary_size", len(v.Vocabulary)),
		slog.Int("max_features", v.MaxFeatures))

	return nil
}

// Transform maps each document to its TF-IDF vector over the frozen
// vocabulary. Terms outside the vocabulary are ignored; rows are L2
// normalized.
func (v *Vectorizer) Transform(corpus []string) (*sparse.CSR, error) {
	if !v.Fitted() {
		return nil, fmt.Errorf("[Vectorizer] %w", ErrNotFitted)
	}

	dok := sparse.NewDOK(len(corpus), len(v.IDF))
	for row, doc := range corpus {
		counts := make(map[int]float64)
		for _, term := range strings.Fields(doc) {
			if col, ok := v.Vocabulary[term]; ok {
				counts[col]++
			}
		}

		var norm float64
		for col, count := range counts {
			weighted := count * v.IDF[col]
			counts[col] = weighted
			norm += weighted * weighted
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		for col, weighted := range counts {
			dok.Set(row, col, weighted/norm)
		}
	}

	return dok.ToCSR(), nil
}

// Hash digests the frozen vocabulary and IDF weights. A model artifact
// records it at train time so vocabulary drift is caught at load time.
func (v *Vectorizer) Hash() string {
	if !v.Fitted() {
		return ""
	}

	terms := make([]string, 0, len(v.Vocabulary))
	for term := range v.Vocabulary {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	h := sha256.New()
	for _, term := range terms {
		fmt.Fprintf(h, "%s:%d:%.12f\n", term, v.Vocabulary[term], v.IDF[v.Vocabulary[term]])
	}
	return hex.EncodeToString(h.Sum(nil))
}
