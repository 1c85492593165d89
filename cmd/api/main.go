package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"review_analyzer/internal/adapters/dataset"
	server "review_analyzer/internal/adapters/http_server"
	"review_analyzer/internal/adapters/observability"
	redisad "review_analyzer/internal/adapters/redis"
	"review_analyzer/internal/adapters/sentiment"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
	"review_analyzer/internal/storage/memory"
	mysqlrepo "review_analyzer/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// dataset
	src, closeSrc := datasetSource(cfg)
	seed, err := app.LoadReviews(ctx, src)
	switch {
	case errors.Is(err, dataset.ErrMissing):
		log.Warn().Err(err).Msg("no dataset found; starting with an empty store")
	case err != nil:
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	closeSrc()
	store := memory.New(seed)
	log.Info().Int("reviews", store.Len()).Msg("review store ready")

	// deps
	var scorer domain.SentimentScorer = sentiment.NewVaderScorer()
	if cfg.RedisAddr != "" {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; scores will be computed until it recovers")
		}
		scorer = sentiment.NewCachedScorer(scorer, cache, cfg.CacheTTL)
	}
	q := app.NewQueryService(store, app.NewRanker(scorer, cfg.ScoreWorkers))
	w := app.NewIntakeService(store, nil)

	// http
	srv := server.New(cfg.RequestTimeout, server.WithWriteRPS(float64(cfg.WriteRPS)))
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, W: w})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

// datasetSource picks MySQL, then a remote CSV, then the local CSV file.
func datasetSource(cfg shared.Config) (domain.DatasetSource, func()) {
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Str("source", "mysql").Msg("database connection ok")
		return mysqlrepo.New(db), func() { _ = db.Close() }
	}
	if cfg.DatasetURL != "" {
		remote, err := dataset.NewRemote(cfg.DatasetURL, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize dataset client")
		}
		log.Info().Str("source", "url").Str("url", cfg.DatasetURL).Msg("loading dataset")
		return remote, func() {}
	}
	log.Info().Str("source", "file").Str("path", cfg.DatasetPath).Msg("loading dataset")
	return dataset.NewFile(cfg.DatasetPath), func() {}
}
