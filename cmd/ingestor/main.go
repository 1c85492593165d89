package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_analyzer/internal/adapters/dataset"
	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
	mysqlrepo "review_analyzer/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	log.Info().
		Str("path", cfg.DatasetPath).
		Str("url", cfg.DatasetURL).
		Int("workers", cfg.Workers).
		Int("batch", cfg.BatchSize).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	var src domain.DatasetSource = dataset.NewFile(cfg.DatasetPath)
	if cfg.DatasetURL != "" {
		remote, err := dataset.NewRemote(cfg.DatasetURL, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize dataset client")
		}
		src = remote
	}
	reviews, err := app.LoadReviews(ctx, src)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for start := 0; start < len(reviews); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(reviews))
		batch := reviews[start:end]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("semaphore acquire failed")
			break
		}

		wg.Add(1)
		go func(offset int, batch []domain.Review) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertReviews(ctx, batch); err != nil {
				failed.Add(int64(len(batch)))
				log.Warn().Int("offset", offset).Int("size", len(batch)).Err(err).Msg("batch upsert failed")
				return
			}
			log.Info().Int("offset", offset).Int("size", len(batch)).Msg("batch upserted")
		}(start, batch)
	}

	wg.Wait()

	total, err := repo.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("count failed")
	}
	log.Info().
		Int("loaded", len(reviews)).
		Int64("failed", failed.Load()).
		Int("table_rows", total).
		Msg("ingestion completed")
}
