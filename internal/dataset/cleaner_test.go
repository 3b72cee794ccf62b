package dataset

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/aerosent/internal/models"
)

func testFrame(records [][]string) dataframe.DataFrame {
	return dataframe.LoadRecords(records,
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			models.ColConfidence: series.Float,
		}),
	)
}

var testHeader = []string{
	models.ColTweetID, models.ColText, models.ColSentiment, models.ColConfidence,
	models.ColReason, models.ColAirline, models.ColLocation, models.ColCreated,
}

func TestClean_FillsOptionalAndDropsRequired(t *testing.T) {
	df := testFrame([][]string{
		testHeader,
		{"1", "Flight was delayed", "negative", "0.9", "Late Flight", "United", "Boston", "2015-02-24"},
		{"2", "Great staff!", "positive", "1.0", "", "Delta", "", "2015-02-24"},
		{"3", "", "neutral", "0.7", "", "United", "NYC", "2015-02-24"},
		{"4", "Lost my bag", "negative", "", "", "United", "", "2015-02-24"},
	})
	require.NoError(t, df.Error())

	cleaned, stats := Clean(df)

	// Row 3 has no text, row 4 no confidence.
	assert.Equal(t, 2, stats.Dropped)
	assert.Equal(t, 2, cleaned.Nrow())

	locations := cleaned.Col(models.ColLocation).Records()
	assert.Equal(t, []string{"Boston", models.DefaultLocation}, locations)

	reasons := cleaned.Col(models.ColReason).Records()
	assert.Equal(t, []string{"Late Flight", models.DefaultReason}, reasons)

	for _, col := range []string{models.ColText, models.ColSentiment, models.ColConfidence} {
		for i := 0; i < cleaned.Nrow(); i++ {
			assert.False(t, cleaned.Col(col).Elem(i).IsNA(),
				"required column %s has NA at row %d", col, i)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	df := testFrame([][]string{
		testHeader,
		{"1", "Flight was delayed", "negative", "0.9", "", "United", "", "2015-02-24"},
		{"2", "", "neutral", "0.7", "", "Delta", "LA", "2015-02-24"},
	})
	require.NoError(t, df.Error())

	once, _ := Clean(df)
	twice, stats := Clean(once)

	assert.Equal(t, 0, stats.Dropped)
	assert.Equal(t, 0, stats.Filled)
	assert.Equal(t, once.Records(), twice.Records())
}
