package sentiment

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog/log"

	"review_analyzer/internal/domain"
)

// CachedScorer memoizes scores by body hash. Scores are a pure function of
// the text, so entries never need invalidation; the TTL only bounds memory.
// Cache errors fall through to the wrapped scorer.
type CachedScorer struct {
	next  domain.SentimentScorer
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedScorer(next domain.SentimentScorer, c domain.Cache, ttl time.Duration) *CachedScorer {
	return &CachedScorer{next: next, cache: c, ttl: ttl}
}

func cacheKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return "sentiment:v1:" + hex.EncodeToString(sum[:])
}

func (c *CachedScorer) Score(ctx context.Context, text string) (domain.Sentiment, error) {
	key := cacheKey(text)
	var s domain.Sentiment
	ok, err := c.cache.Get(ctx, key, &s)
	if err != nil {
		log.Debug().Err(err).Msg("sentiment cache get failed")
	}
	if ok && err == nil {
		return s, nil
	}

	s, err = c.next.Score(ctx, text)
	if err != nil {
		return domain.Sentiment{}, err
	}
	if err := c.cache.Set(ctx, key, s, int(c.ttl.Seconds())); err != nil {
		log.Debug().Err(err).Msg("sentiment cache set failed")
	}
	return s, nil
}
