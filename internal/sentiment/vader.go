package sentiment

import "github.com/jonreiter/govader"

var analyzer = govader.NewSentimentIntensityAnalyzer()

// CompoundScore returns the VADER compound polarity of the raw tweet text in
// [-1, 1]. It is exported alongside the dataset labels so the dashboard can
// contrast lexicon sentiment with the labeled sentiment; it never feeds
// training.
func CompoundScore(text string) float64 {
	return analyzer.PolarityScores(text).Compound
}

// CompoundScores scores every text in order.
func CompoundScores(texts []string) []float64 {
	scores := make([]float64, len(texts))
	for i, text := range texts {
		scores[i] = CompoundScore(text)
	}
	return scores
}
