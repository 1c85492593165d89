package domain

import "context"

// ReviewStore is the shared append-only review collection.
type ReviewStore interface {
	// Snapshot returns an isolated copy in insertion order.
	Snapshot() []Review
	Append(r Review)
	Len() int
}

// SentimentScorer turns review text into a polarity score.
// A text it cannot score yields a *CapabilityFailure.
type SentimentScorer interface {
	Score(ctx context.Context, text string) (Sentiment, error)
}

// Cache stores scores by key. Entries only expire; nothing invalidates them.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
}

// DatasetSource yields the raw rows preloaded into the store at startup,
// keyed by column name.
type DatasetSource interface {
	Rows(ctx context.Context) ([]map[string]string, error)
}
