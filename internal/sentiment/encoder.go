package sentiment

import (
	"errors"
	"fmt"

	"github.com/spacesedan/aerosent/internal/models"
)

// ErrUnknownLabel is returned when a sentiment label falls outside the
// dataset's label domain. The pipeline aborts on it rather than mis-encode.
var ErrUnknownLabel = errors.New("unknown sentiment label")

var labelScores = map[string]int{
	models.LabelPositive: 1,
	models.LabelNeutral:  0,
	models.LabelNegative: -1,
}

// EncodeLabel maps positive/neutral/negative to 1/0/-1.
func EncodeLabel(label string) (int, error) {
	score, ok := labelScores[label]
	if !ok {
		return 0, fmt.Errorf("[Encoder] %w: %q", ErrUnknownLabel, label)
	}
	return score, nil
}

// EncodeLabels encodes every label, failing on the first unknown value.
func EncodeLabels(labels []string) ([]int, error) {
	scores := make([]int, len(labels))
	for i, label := range labels {
		score, err := EncodeLabel(label)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		scores[i] = score
	}
	return scores, nil
}
