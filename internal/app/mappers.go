package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"review_analyzer/internal/domain"
)

/********** alias registry (single source of truth) **********/

var rowAliases = map[string][]string{
	"id":        {"ReviewId", "review_id", "reviewId", "id"},
	"timestamp": {"Timestamp", "timestamp", "created_at", "createdAt", "date"},
	"location":  {"Location", "location", "city"},
	"body":      {"ReviewBody", "review_body", "reviewBody", "body", "text", "review"},
}

// timestamps seen in exported datasets; normalized to domain.TimestampLayout
var timestampLayouts = []string{
	domain.TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000000",
}

// firstNonEmpty returns the first aliased column that is not blank. The value
// is returned as stored; callers trim where the column is an identifier.
func firstNonEmpty(row map[string]string, key string) string {
	for _, k := range rowAliases[key] {
		if v := row[k]; strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func normalizeTimestamp(s string) (string, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(domain.TimestampLayout), true
		}
	}
	return "", false
}

// mapRow builds a review from a dataset row. ok is false when the row is
// unusable; reason says why.
func mapRow(row map[string]string, newID func() string) (rv domain.Review, reason string, ok bool) {
	rv.ReviewBody = firstNonEmpty(row, "body")
	if rv.ReviewBody == "" {
		return rv, "empty review body", false
	}
	rv.Location = strings.TrimSpace(firstNonEmpty(row, "location"))
	if rv.Location == "" {
		return rv, "empty location", false
	}
	ts, valid := normalizeTimestamp(strings.TrimSpace(firstNonEmpty(row, "timestamp")))
	if !valid {
		return rv, "unparseable timestamp", false
	}
	rv.Timestamp = ts

	rv.ReviewID = strings.TrimSpace(firstNonEmpty(row, "id"))
	if rv.ReviewID == "" {
		rv.ReviewID = newID()
	}
	return rv, "", true
}

/********** preload **********/

// LoadReviews reads the dataset once and maps it to reviews. Rows without a
// body, location or parseable timestamp are skipped, as are repeated ids.
// Locations outside the whitelist are kept; the read path filters them.
func LoadReviews(ctx context.Context, src domain.DatasetSource) ([]domain.Review, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	skipped := 0
	for i, row := range rows {
		rv, reason, ok := mapRow(row, uuid.NewString)
		if !ok {
			skipped++
			log.Warn().Int("row", i+1).Str("reason", reason).Msg("dataset row skipped")
			continue
		}
		if _, dup := seen[rv.ReviewID]; dup {
			skipped++
			log.Warn().Int("row", i+1).Str("review_id", rv.ReviewID).Msg("duplicate review id skipped")
			continue
		}
		seen[rv.ReviewID] = struct{}{}
		out = append(out, rv)
	}

	log.Info().Int("loaded", len(out)).Int("skipped", skipped).Msg("dataset loaded")
	return out, nil
}
