package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
)

type QueryService struct {
	store  domain.ReviewStore
	ranker *Ranker
}

func NewQueryService(store domain.ReviewStore, r *Ranker) *QueryService {
	return &QueryService{store: store, ranker: r}
}

// Search filters a snapshot of the store and ranks the result by sentiment.
func (s *QueryService) Search(ctx context.Context, f domain.ReviewFilter) ([]domain.ScoredReview, error) {
	return s.ranker.Rank(ctx, FilterReviews(s.store.Snapshot(), f))
}

// FilterReviews keeps reviews from allowed locations that match the optional
// location and inclusive date bounds. Input order is preserved.
func FilterReviews(in []domain.Review, f domain.ReviewFilter) []domain.Review {
	var start, end time.Time
	if f.Start != nil {
		start = dateOf(*f.Start)
	}
	if f.End != nil {
		end = dateOf(*f.End)
	}

	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		if !shared.IsAllowedLocation(r.Location) {
			continue
		}
		if f.Location != "" && r.Location != f.Location {
			continue
		}
		if f.Start != nil || f.End != nil {
			ts, err := r.CreatedAt()
			if err != nil {
				continue
			}
			day := dateOf(ts)
			if f.Start != nil && day.Before(start) {
				continue
			}
			if f.End != nil && day.After(end) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Ranker scores reviews and orders them by compound score, highest first.
type Ranker struct {
	scorer  domain.SentimentScorer
	workers int
}

func NewRanker(s domain.SentimentScorer, workers int) *Ranker {
	if workers <= 0 {
		workers = 1
	}
	return &Ranker{scorer: s, workers: workers}
}

// Rank scores every review once. Reviews the scorer cannot handle are left
// out of the result; ties keep their input order. The only error returned is
// the context's.
func (r *Ranker) Rank(ctx context.Context, reviews []domain.Review) ([]domain.ScoredReview, error) {
	scores := make([]domain.Sentiment, len(reviews))
	scored := make([]bool, len(reviews))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range reviews {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := r.scorer.Score(gctx, reviews[i].ReviewBody)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				observability.ObserveScore(false)
				ev := log.Warn()
				var cf *domain.CapabilityFailure
				if !errors.As(err, &cf) {
					ev = log.Error()
				}
				ev.Err(err).Str("review_id", reviews[i].ReviewID).Msg("sentiment scoring failed; review excluded")
				return nil
			}
			observability.ObserveScore(true)
			scores[i], scored[i] = s, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.ScoredReview, 0, len(reviews))
	for i, rv := range reviews {
		if scored[i] {
			out = append(out, domain.ScoredReview{Review: rv, Sentiment: scores[i]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})
	return out, nil
}
