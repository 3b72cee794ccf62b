package dataset

import (
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spacesedan/aerosent/internal/models"
)

// fillDefaults maps optional columns to the sentinel used when the field is
// empty in the source file.
var fillDefaults = map[string]string{
	models.ColLocation: models.DefaultLocation,
	models.ColReason:   models.DefaultReason,
}

// requiredValues are the columns a row must have a value in to survive
// cleaning.
var requiredValues = []string{
	models.ColText,
	models.ColSentiment,
	models.ColConfidence,
}

type CleanStats struct {
	Filled  int
	Dropped int
}

// Clean fills missing optional fields with their sentinel defaults, then
// drops rows missing any required field. Dropped rows are counted, never an
// error. Running Clean on already-clean data changes nothing.
func Clean(df dataframe.DataFrame) (dataframe.DataFrame, CleanStats) {
	var stats CleanStats

	for col, def := range fillDefaults {
		s := df.Col(col)
		values := make([]string, df.Nrow())
		for i := 0; i < df.Nrow(); i++ {
			elem := s.Elem(i)
			if elem.IsNA() || strings.TrimSpace(elem.String()) == "" {
				values[i] = def
				stats.Filled++
			} else {
				values[i] = elem.String()
			}
		}
		df = df.Mutate(series.New(values, series.String, col))
	}

	keep := make([]int, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		if rowComplete(df, i) {
			keep = append(keep, i)
		}
	}
	stats.Dropped = df.Nrow() - len(keep)

	if stats.Dropped > 0 {
		df = df.Subset(keep)
	}

	slog.Info("[Cleaner] Dataset cleaned",
		slog.Int("filled_fields", stats.Filled),
		slog.Int("dropped_rows", stats.Dropped),
		slog.Int("remaining_rows", df.Nrow()))

	return df, stats
}

func rowComplete(df dataframe.DataFrame, row int) bool {
	for _, col := range requiredValues {
		elem := df.Col(col).Elem(row)
		if elem.IsNA() {
			return false
		}
		if df.Col(col).Type() == series.String && strings.TrimSpace(elem.String()) == "" {
			return false
		}
	}
	return true
}
