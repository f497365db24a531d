// Command enrich refreshes words whose translation or definition is missing
// or a provider sentinel. It selects the stalest candidates across all users,
// queries the dictionary and translation APIs, and persists what it finds.
//
// Intended to run from cron; one invocation processes one batch.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/wordbox/wordbox-backend/internal/adapter/postgres"
	wordrepo "github.com/wordbox/wordbox-backend/internal/adapter/postgres/word"
	"github.com/wordbox/wordbox-backend/internal/adapter/provider/dictapi"
	"github.com/wordbox/wordbox-backend/internal/adapter/provider/translate"
	"github.com/wordbox/wordbox-backend/internal/app"
	"github.com/wordbox/wordbox-backend/internal/config"
	"github.com/wordbox/wordbox-backend/internal/service/enrich"
)

func main() {
	batchSize := flag.Int("batch-size", 50, "maximum number of words to refresh")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("starting enrich", slog.String("version", app.BuildVersion()))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	dictionary := dictapi.NewProviderWithURL(cfg.Enrichment.DictionaryBaseURL, logger)
	translator := translate.New(
		cfg.Enrichment.TranslateBaseURL,
		cfg.Enrichment.TargetLanguage,
		cfg.Enrichment.RequestTimeout,
		logger,
	)

	svc := enrich.NewService(logger, words, dictionary, translator)

	stats, err := svc.Run(ctx, *batchSize)
	if err != nil {
		logger.Error("enrichment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("enrichment complete",
		slog.Int("processed", stats.Processed),
		slog.Int("translated", stats.Translated),
		slog.Int("defined", stats.Defined),
		slog.Int("nothing_found", stats.NothingFound),
		slog.Int("failed", stats.Failed),
	)
}
