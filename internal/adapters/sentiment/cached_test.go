package sentiment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"review_analyzer/internal/adapters/sentiment"
	"review_analyzer/internal/domain"
)

// ---- fakes ----

type fakeCache struct {
	store  map[string]domain.Sentiment
	getErr error
	sets   int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.Sentiment) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.Sentiment{}
	}
	c.store[key] = v.(domain.Sentiment)
	c.sets++
	return nil
}

type countingScorer struct {
	calls int
	err   error
}

func (s *countingScorer) Score(context.Context, string) (domain.Sentiment, error) {
	s.calls++
	if s.err != nil {
		return domain.Sentiment{}, s.err
	}
	return domain.Sentiment{Pos: 0.5, Neu: 0.5, Compound: 0.6}, nil
}

// ---- tests ----

func TestCachedScorer_MissThenHit(t *testing.T) {
	inner := &countingScorer{}
	cache := &fakeCache{}
	s := sentiment.NewCachedScorer(inner, cache, time.Hour)

	a, err := s.Score(context.Background(), "nice")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, err := s.Score(context.Background(), "nice")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if a != b {
		t.Fatalf("cached score differs: %+v vs %+v", a, b)
	}
	if inner.calls != 1 || cache.sets != 1 {
		t.Fatalf("calls=%d sets=%d, want 1/1", inner.calls, cache.sets)
	}
}

func TestCachedScorer_CacheErrorFallsThrough(t *testing.T) {
	inner := &countingScorer{}
	s := sentiment.NewCachedScorer(inner, &fakeCache{getErr: errors.New("redis down")}, time.Hour)
	got, err := s.Score(context.Background(), "nice")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Compound != 0.6 || inner.calls != 1 {
		t.Fatalf("got %+v after %d calls", got, inner.calls)
	}
}

func TestCachedScorer_FailuresAreNotCached(t *testing.T) {
	inner := &countingScorer{err: &domain.CapabilityFailure{Reason: "nope"}}
	cache := &fakeCache{}
	s := sentiment.NewCachedScorer(inner, cache, time.Hour)
	if _, err := s.Score(context.Background(), "x"); err == nil {
		t.Fatalf("expected error")
	}
	if cache.sets != 0 {
		t.Fatalf("failure was cached")
	}
}
