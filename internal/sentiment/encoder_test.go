package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLabel_Bijection(t *testing.T) {
	cases := map[string]int{
		"positive": 1,
		"neutral":  0,
		"negative": -1,
	}

	for label, want := range cases {
		got, err := EncodeLabel(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "label %s", label)
	}
}

func TestEncodeLabel_UnknownIsFatal(t *testing.T) {
	for _, label := range []string{"", "Positive", "NEGATIVE", "mixed"} {
		_, err := EncodeLabel(label)
		require.Error(t, err, "label %q", label)
		assert.True(t, errors.Is(err, ErrUnknownLabel))
	}
}

func TestEncodeLabels_ReportsRow(t *testing.T) {
	_, err := EncodeLabels([]string{"positive", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	scores, err := EncodeLabels([]string{"negative", "neutral", "positive"})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, scores)
}
