package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/aerosent/internal/models"
)

func sampleEvaluation(converged bool) models.Evaluation {
	return models.Evaluation{
		Accuracy:         0.81,
		BaselineAccuracy: 0.62,
		Labels:           []string{"negative", "neutral", "positive"},
		Confusion:        [][]int{{100, 5, 2}, {10, 30, 4}, {3, 6, 40}},
		PerClass: []models.ClassMetrics{
			{Label: "negative", Precision: 0.88, Recall: 0.93, F1: 0.90, AUC: 0.95, Support: 107},
			{Label: "neutral", Precision: 0.73, Recall: 0.68, F1: 0.70, AUC: 0.88, Support: 44},
			{Label: "positive", Precision: 0.87, Recall: 0.82, F1: 0.84, AUC: 0.93, Support: 49},
		},
		TrainSize: 800,
		TestSize:  200,
		Converged: converged,
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evaluation.md")
	meta := models.RunMeta{RunID: "run-1", CreatedAt: time.Now(), Rows: 1000, Dropped: 12}

	require.NoError(t, WriteReport(path, sampleEvaluation(true), meta))

	md, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(md), "run-1")
	assert.Contains(t, string(md), "0.8100")
	assert.Contains(t, string(md), "| negative |")
	assert.NotContains(t, string(md), "did not converge")

	html, err := os.ReadFile(filepath.Join(dir, "evaluation.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "run-1")
}

func TestWriteReport_ConvergenceWarning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evaluation.md")
	meta := models.RunMeta{RunID: "run-2", CreatedAt: time.Now()}

	require.NoError(t, WriteReport(path, sampleEvaluation(false), meta))

	md, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(md), "did not converge")

	html, err := os.ReadFile(filepath.Join(dir, "evaluation.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}
