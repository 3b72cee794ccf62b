package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/aerosent/internal/models"
)

const sampleCSV = `tweet_id,text,airline_sentiment,airline_sentiment_confidence,negativereason,airline,tweet_location,tweet_created
1,"Flight was delayed for 3 hours, staff were rude",negative,1.0,Late Flight,United,Boston,2015-02-24
2,Great crew today!,positive,0.9,,Delta,,2015-02-24
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	df, err := Load(writeTempCSV(t, sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	assert.Contains(t, df.Names(), models.ColText)

	conf := df.Col(models.ColConfidence).Float()
	assert.InDelta(t, 1.0, conf[0], 1e-9)
}

func TestLoad_MissingColumnIsFatal(t *testing.T) {
	path := writeTempCSV(t, "tweet_id,text\n1,hello\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
