package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

const (
	DEFAULT_MAX_FEATURES   = 5000
	DEFAULT_MAX_ITERATIONS = 500
)

var defaultTopicKeywords = []string{"flight", "delay", "staff", "service", "price"}

type Config struct {
	DatasetPath   string
	OutputCSVPath string
	ModelPath     string
	ReportPath    string
	MaxFeatures   int
	MaxIterations int
	TopicKeywords []string
}

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// Load reads the pipeline configuration from the environment, falling back
// to defaults for anything unset.
func Load() Config {
	return Config{
		DatasetPath:   getEnv("DATASET_PATH", "data/tweets.csv"),
		OutputCSVPath: getEnv("OUTPUT_CSV_PATH", "out/tweets_enriched.csv"),
		ModelPath:     getEnv("MODEL_PATH", "out/sentiment_model.bin"),
		ReportPath:    getEnv("REPORT_PATH", "out/evaluation.md"),
		MaxFeatures:   getEnvInt("MAX_FEATURES", DEFAULT_MAX_FEATURES),
		MaxIterations: getEnvInt("MAX_ITERATIONS", DEFAULT_MAX_ITERATIONS),
		TopicKeywords: getEnvList("TOPIC_KEYWORDS", defaultTopicKeywords),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	var keywords []string
	for _, kw := range strings.Split(raw, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return fallback
	}
	return keywords
}
