package domain

import "time"

// TimestampLayout is the wire and storage format of Review.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the format of the start_date/end_date query bounds.
const DateLayout = "2006-01-02"

type Review struct {
	ReviewID   string
	Timestamp  string // TimestampLayout
	Location   string
	ReviewBody string
}

// CreatedAt parses Timestamp. Records in the store always parse.
func (r Review) CreatedAt() (time.Time, error) {
	return time.Parse(TimestampLayout, r.Timestamp)
}

// Sentiment is a VADER-style polarity score.
type Sentiment struct {
	Neg      float64
	Neu      float64
	Pos      float64
	Compound float64
}

// ScoredReview pairs a review with the score computed for one response.
// The score is never written back to the store.
type ScoredReview struct {
	Review
	Sentiment Sentiment
}

// ReviewFilter is the already-parsed read query. Zero values mean "no filter".
type ReviewFilter struct {
	Location string
	Start    *time.Time // inclusive, date only
	End      *time.Time // inclusive, date only
}
