package topics

import (
	"github.com/cloudflare/ahocorasick"
)

// Tagger flags which of a fixed keyword set appear in a normalized text.
// Matching is plain substring containment; since the text is already
// lowercased by normalization, lowercase keywords match case-insensitively
// against the original tweet.
type Tagger struct {
	keywords []string
	matcher  *ahocorasick.Matcher
}

func NewTagger(keywords []string) *Tagger {
	return &Tagger{
		keywords: keywords,
		matcher:  ahocorasick.NewStringMatcher(keywords),
	}
}

func (t *Tagger) Keywords() []string {
	return t.keywords
}

// Flags returns one 0/1 flag per keyword, in keyword order. Multiple topics
// may be flagged on the same text.
func (t *Tagger) Flags(normalized string) []int {
	flags := make([]int, len(t.keywords))
	for _, hit := range t.matcher.Match([]byte(normalized)) {
		flags[hit] = 1
	}
	return flags
}

// FlagsAll returns a column per keyword across all texts, in keyword order.
func (t *Tagger) FlagsAll(normalized []string) [][]int {
	columns := make([][]int, len(t.keywords))
	for i := range columns {
		columns[i] = make([]int, len(normalized))
	}
	for row, text := range normalized {
		for col, flag := range t.Flags(text) {
			columns[col][row] = flag
		}
	}
	return columns
}
