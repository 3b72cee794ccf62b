package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer()
	require.NoError(t, err)
	return n
}

func TestNormalize_DelayedFlightScenario(t *testing.T) {
	n := newTestNormalizer(t)

	out := n.Normalize("Flight was delayed for 3 hours, staff were rude")
	tokens := strings.Fields(out)

	// Lowercased lemmas survive.
	assert.Contains(t, tokens, "flight")
	assert.Contains(t, tokens, "delay")
	assert.Contains(t, tokens, "staff")
	assert.Contains(t, tokens, "rude")

	// Stopwords and punctuation do not.
	assert.NotContains(t, tokens, "was")
	assert.NotContains(t, tokens, "for")
	assert.NotContains(t, tokens, "were")
	assert.NotContains(t, out, ",")
}

func TestNormalize_StripsURLsMentionsEmails(t *testing.T) {
	n := newTestNormalizer(t)

	out := n.Normalize("@united check https://example.com/status or mail help@united.com")
	assert.NotContains(t, out, "united")
	assert.NotContains(t, out, "example")
	assert.NotContains(t, out, "@")
}

func TestNormalize_Deterministic(t *testing.T) {
	n := newTestNormalizer(t)

	const text = "Cancelled flights and lost luggage ruined our trip"
	first := n.Normalize(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.Normalize(text))
	}
}

func TestNormalize_EmptyIsNotAnError(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("https://only-a-link.example.com"))
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	n := newTestNormalizer(t)

	out := n.NormalizeAll([]string{"Delayed again", "Great pilot"})
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "delay")
	assert.Contains(t, out[1], "pilot")
}
