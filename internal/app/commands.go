package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/domain"
)

type IntakeService struct {
	store domain.ReviewStore
	clock clockwork.Clock
	newID func() string
}

func NewIntakeService(store domain.ReviewStore, clock clockwork.Clock) *IntakeService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IntakeService{store: store, clock: clock, newID: uuid.NewString}
}

type reviewInput struct {
	ReviewBody string `validate:"required,utf8"`
	Location   string `validate:"required,allowed_location"`
}

// Create validates the input, stamps identity and time, and appends the
// review. Nothing is stored when validation fails.
func (s *IntakeService) Create(_ context.Context, reviewBody, location string) (domain.Review, error) {
	in := reviewInput{ReviewBody: reviewBody, Location: location}
	if err := validateStruct(in); err != nil {
		return domain.Review{}, err
	}

	r := domain.Review{
		ReviewID:   s.newID(),
		Timestamp:  s.clock.Now().Format(domain.TimestampLayout),
		Location:   in.Location,
		ReviewBody: in.ReviewBody,
	}
	s.store.Append(r)
	observability.ObserveCreated()

	log.Info().
		Str("review_id", r.ReviewID).
		Str("location", r.Location).
		Msg("review created")
	return r, nil
}
