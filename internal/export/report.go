package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/aerosent/internal/models"
)

// WriteReport writes the evaluation report as markdown and an HTML rendering
// of it next to it (same name, .html extension) for the dashboard.
func WriteReport(path string, eval models.Evaluation, meta models.RunMeta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("[Exporter] failed to create report directory: %w", err)
	}

	md := renderMarkdown(eval, meta)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("[Exporter] failed to write report: %w", err)
	}

	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	html := blackfriday.Run([]byte(md))
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return fmt.Errorf("[Exporter] failed to write html report: %w", err)
	}

	slog.Info("[Exporter] Evaluation report written",
		slog.String("markdown", path),
		slog.String("html", htmlPath))

	return nil
}

func renderMarkdown(eval models.Evaluation, meta models.RunMeta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sentiment Classifier Evaluation\n\n")
	fmt.Fprintf(&b, "- Run: `%s` (%s)\n", meta.RunID, meta.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Rows: %d (%d dropped during cleaning)\n", meta.Rows, meta.Dropped)
	fmt.Fprintf(&b, "- Split: %d train / %d test\n", eval.TrainSize, eval.TestSize)
	fmt.Fprintf(&b, "- Accuracy: **%.4f** (majority-class baseline %.4f)\n\n", eval.Accuracy, eval.BaselineAccuracy)

	if !eval.Converged {
		fmt.Fprintf(&b, "> **Warning**: the optimizer did not converge within the iteration cap; metrics below reflect the best parameters found.\n\n")
	}

	fmt.Fprintf(&b, "## Per-class metrics\n\n")
	fmt.Fprintf(&b, "| Class | Precision | Recall | F1 | AUC | Support |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	for _, c := range eval.PerClass {
		fmt.Fprintf(&b, "| %s | %.4f | %.4f | %.4f | %.4f | %d |\n",
			c.Label, c.Precision, c.Recall, c.F1, c.AUC, c.Support)
	}

	fmt.Fprintf(&b, "\n## Confusion matrix\n\n")
	fmt.Fprintf(&b, "| true \\ predicted |")
	for _, label := range eval.Labels {
		fmt.Fprintf(&b, " %s |", label)
	}
	fmt.Fprintf(&b, "\n|---|")
	for range eval.Labels {
		fmt.Fprintf(&b, "---|")
	}
	fmt.Fprintf(&b, "\n")
	for i, label := range eval.Labels {
		fmt.Fprintf(&b, "| %s |", label)
		for j := range eval.Labels {
			fmt.Fprintf(&b, " %d |", eval.Confusion[i][j])
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}
