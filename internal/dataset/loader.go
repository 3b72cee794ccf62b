package dataset

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spacesedan/aerosent/internal/models"
)

// requiredColumns must exist in the input file; their absence is a
// configuration error, not a data error.
var requiredColumns = []string{
	models.ColText,
	models.ColSentiment,
	models.ColConfidence,
	models.ColReason,
	models.ColAirline,
	models.ColLocation,
	models.ColCreated,
}

// Load reads the tweet dataset into a dataframe. All columns are read as
// strings except the sentiment confidence, which is numeric.
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("[Loader] failed to open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			models.ColConfidence: series.Float,
		}),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("[Loader] failed to parse dataset: %w", df.Error())
	}

	if err := checkColumns(df); err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Info("[Loader] Dataset loaded",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return df, nil
}

func checkColumns(df dataframe.DataFrame) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("[Loader] dataset is missing column %q", col)
		}
	}
	return nil
}
