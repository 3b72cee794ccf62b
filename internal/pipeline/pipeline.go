package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/google/uuid"

	"github.com/spacesedan/aerosent/config"
	"github.com/spacesedan/aerosent/internal/classifier"
	"github.com/spacesedan/aerosent/internal/dataset"
	"github.com/spacesedan/aerosent/internal/export"
	"github.com/spacesedan/aerosent/internal/features"
	"github.com/spacesedan/aerosent/internal/models"
	"github.com/spacesedan/aerosent/internal/nlp"
	"github.com/spacesedan/aerosent/internal/sentiment"
	"github.com/spacesedan/aerosent/internal/topics"
)

// Run executes the batch pipeline end to end: load, clean, normalize,
// encode, tag, vectorize, train, evaluate, export. Stages run strictly in
// order; any fatal error aborts the run. Cancellation is honored between
// stages.
func Run(ctx context.Context, cfg config.Config) error {
	meta := models.RunMeta{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	slog.Info("[Pipeline] Starting run",
		slog.String("run_id", meta.RunID),
		slog.String("dataset", cfg.DatasetPath))

	df, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return err
	}

	df, stats := dataset.Clean(df)
	meta.Rows = df.Nrow()
	meta.Dropped = stats.Dropped
	if df.Nrow() == 0 {
		return fmt.Errorf("[Pipeline] no rows survived cleaning")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("[Pipeline] run canceled: %w", err)
	}

	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		return err
	}
	texts := df.Col(models.ColText).Records()
	normalized := normalizer.NormalizeAll(texts)
	df = df.Mutate(series.New(normalized, series.String, models.ColNormalizedText))

	scores, err := sentiment.EncodeLabels(df.Col(models.ColSentiment).Records())
	if err != nil {
		return fmt.Errorf("[Pipeline] label encoding failed: %w", err)
	}
	df = df.Mutate(series.New(scores, series.Int, models.ColSentimentScore))

	df = df.Mutate(series.New(sentiment.CompoundScores(texts), series.Float, models.ColVaderScore))

	tagger := topics.NewTagger(cfg.TopicKeywords)
	for i, column := range tagger.FlagsAll(normalized) {
		name := models.TopicColPrefix + cfg.TopicKeywords[i]
		df = df.Mutate(series.New(column, series.Int, name))
	}

	vectorizer := features.NewVectorizer(cfg.MaxFeatures)
	if err := vectorizer.Fit(normalized); err != nil {
		return err
	}

	trainIdx, testIdx := classifier.TrainTestSplit(len(normalized), classifier.TEST_FRACTION, classifier.SEED)
	trainX, err := vectorizer.Transform(subsetStrings(normalized, trainIdx))
	if err != nil {
		return err
	}
	testX, err := vectorizer.Transform(subsetStrings(normalized, testIdx))
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("[Pipeline] run canceled: %w", err)
	}

	model, err := classifier.Train(trainX, subsetInts(scores, trainIdx),
		classifier.DefaultTrainOptions(cfg.MaxIterations))
	if err != nil {
		return err
	}

	eval := classifier.Evaluate(model, testX, subsetInts(scores, testIdx), len(trainIdx))
	slog.Info("[Pipeline] Model evaluated",
		slog.Float64("accuracy", eval.Accuracy),
		slog.Float64("baseline_accuracy", eval.BaselineAccuracy),
		slog.Bool("converged", eval.Converged))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("[Pipeline] run canceled: %w", err)
	}

	if err := export.WriteCSV(df, cfg.OutputCSVPath); err != nil {
		return err
	}
	if err := export.SaveArtifact(cfg.ModelPath, meta.RunID, vectorizer, model); err != nil {
		return err
	}
	if err := export.WriteReport(cfg.ReportPath, eval, meta); err != nil {
		return err
	}

	slog.Info("[Pipeline] Run complete", slog.String("run_id", meta.RunID))
	return nil
}

func subsetStrings(values []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

func subsetInts(values []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}
