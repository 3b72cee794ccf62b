package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/aerosent/config"
	"github.com/spacesedan/aerosent/internal/logging"
	"github.com/spacesedan/aerosent/internal/pipeline"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.Load()
	if err := pipeline.Run(context.Background(), cfg); err != nil {
		slog.Error("[Pipeline] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
