package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
)

// WriteCSV writes the enriched table for the dashboard. Overwriting an
// existing file is expected, this is a single-writer batch run.
func WriteCSV(df dataframe.DataFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("[Exporter] failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Exporter] failed to create output file: %w", err)
	}
	defer f.Close()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("[Exporter] failed to write enriched table: %w", err)
	}

	slog.Info("[Exporter] Enriched table written",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return nil
}
