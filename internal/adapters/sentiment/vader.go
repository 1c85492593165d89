package sentiment

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jonreiter/govader"

	"review_analyzer/internal/domain"
)

// VaderScorer scores text with the VADER lexicon. The analyzer only reads
// its lexicon after construction, so one instance serves all requests.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(_ context.Context, text string) (s domain.Sentiment, err error) {
	if !utf8.ValidString(text) {
		return domain.Sentiment{}, &domain.CapabilityFailure{Reason: "text is not valid UTF-8"}
	}
	defer func() {
		if p := recover(); p != nil {
			s, err = domain.Sentiment{}, &domain.CapabilityFailure{Reason: "analyzer panicked", Err: fmt.Errorf("%v", p)}
		}
	}()
	ps := v.sia.PolarityScores(text)
	return domain.Sentiment{
		Neg:      ps.Negative,
		Neu:      ps.Neutral,
		Pos:      ps.Positive,
		Compound: ps.Compound,
	}, nil
}
