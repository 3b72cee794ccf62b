package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

// Normalizer maps raw tweet text to a normalized token string: URLs,
// mentions and email addresses stripped, stopwords and punctuation removed,
// tokens lowercased and lemmatized. It is stateless per call and safe to
// share.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

func NewNormalizer() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("[Normalizer] failed to load english lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Normalize is a pure function of the input text; the result may be empty
// but never differs between calls with the same input.
func (n *Normalizer) Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")

	// Lowercases and strips stopwords and punctuation.
	text = stopwords.CleanString(text, "en", false)

	tokens := strings.Fields(text)
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lemmas = append(lemmas, n.lemmatizer.Lemma(token))
	}

	return strings.Join(lemmas, " ")
}

// NormalizeAll applies Normalize to every text in order.
func (n *Normalizer) NormalizeAll(texts []string) []string {
	normalized := make([]string, len(texts))
	for i, text := range texts {
		normalized[i] = n.Normalize(text)
	}
	return normalized
}
