package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAUCOneVsRest_Rankings(t *testing.T) {
	// Positives scored strictly above negatives rank perfectly.
	scores := []float64{0.9, 0.8, 0.2, 0.1}
	positives := []bool{true, true, false, false}
	assert.InDelta(t, 1.0, aucOneVsRest(scores, positives), 1e-9)

	// Inverted ranking scores zero.
	inverted := []bool{false, false, true, true}
	assert.InDelta(t, 0.0, aucOneVsRest(scores, inverted), 1e-9)
}

func TestAUCOneVsRest_DegenerateClasses(t *testing.T) {
	scores := []float64{0.4, 0.6}

	assert.Zero(t, aucOneVsRest(scores, []bool{false, false}))
	assert.Zero(t, aucOneVsRest(scores, []bool{true, true}))
}
