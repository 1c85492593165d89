package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	DatasetPath    string
	DatasetURL     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	ScoreWorkers   int
	WriteRPS       int
	RequestTimeout time.Duration
	Workers        int
	BatchSize      int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8000"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		DatasetPath:    env("DATASET_PATH", "data/reviews.csv"),
		DatasetURL:     env("DATASET_URL", ""),
		MySQLDSN:       env("MYSQL_DSN", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,
		ScoreWorkers:   atoi("SCORE_WORKERS", 8),
		WriteRPS:       atoi("WRITE_RPS", 50),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		Workers:        atoi("INGEST_WORKERS", 4),
		BatchSize:      atoi("INGEST_BATCH_SIZE", 500),
	}
	// PORT is what the hosting platform hands us; it beats HTTP_ADDR.
	if p := os.Getenv("PORT"); p != "" {
		c.HTTPAddr = ":" + p
	}
	if c.MySQLDSN != "" && c.DatasetURL != "" {
		log.Warn().Msg("MYSQL_DSN and DATASET_URL both set; loading from MySQL")
	}
	if c.ScoreWorkers <= 0 {
		c.ScoreWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
