package models

// Column names of the input dataset. The loader fails fast when a required
// column is absent.
const (
	ColTweetID    = "tweet_id"
	ColText       = "text"
	ColSentiment  = "airline_sentiment"
	ColConfidence = "airline_sentiment_confidence"
	ColReason     = "negativereason"
	ColAirline    = "airline"
	ColLocation   = "tweet_location"
	ColCreated    = "tweet_created"
)

// Columns added by the pipeline.
const (
	ColNormalizedText = "normalized_text"
	ColSentimentScore = "sentiment_score"
	ColVaderScore     = "vader_score"

	// TopicColPrefix prefixes one binary column per configured keyword,
	// e.g. topic_delay.
	TopicColPrefix = "topic_"
)

// Sentinel defaults for optional fields.
const (
	DefaultLocation = "unknown"
	DefaultReason   = "not_specified"
)

// Sentiment label domain of the input dataset.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)
