// internal/adapters/http_server/handlers.go
package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	W *app.IntakeService
}

type errorBody struct {
	Error string `json:"error"`
}

type sentimentDTO struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

type reviewDTO struct {
	ReviewID   string `json:"ReviewId"`
	ReviewBody string `json:"ReviewBody"`
	Location   string `json:"Location"`
	Timestamp  string `json:"Timestamp"`
}

type scoredReviewDTO struct {
	reviewDTO
	Sentiment sentimentDTO `json:"sentiment"`
}

func toReviewDTO(r domain.Review) reviewDTO {
	return reviewDTO{ReviewID: r.ReviewID, ReviewBody: r.ReviewBody, Location: r.Location, Timestamp: r.Timestamp}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.listReviews)
	s.mux.With(RateLimit(s.writeRPS)).Post("/", h.createReview)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal JSON response failed")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func errorStatus(err error) (int, string) {
	var ve *domain.ValidationError
	var me *domain.MalformedInputError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.As(err, &me):
		return http.StatusBadRequest, me.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Str("method", r.Method).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func parseDate(param, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		return nil, &domain.MalformedInputError{Param: param, Value: v, Err: err}
	}
	return &t, nil
}

// filterFromQuery reads location, start_date and end_date. Empty values count
// as absent. A literal '+' in location is read as a space.
func filterFromQuery(r *http.Request) (domain.ReviewFilter, error) {
	q := r.URL.Query()
	f := domain.ReviewFilter{Location: strings.ReplaceAll(q.Get("location"), "+", " ")}
	var err error
	if f.Start, err = parseDate("start_date", q.Get("start_date")); err != nil {
		return f, err
	}
	if f.End, err = parseDate("end_date", q.Get("end_date")); err != nil {
		return f, err
	}
	return f, nil
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ranked, err := h.Q.Search(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]scoredReviewDTO, 0, len(ranked))
	for _, sr := range ranked {
		out = append(out, scoredReviewDTO{
			reviewDTO: toReviewDTO(sr.Review),
			Sentiment: sentimentDTO{Neg: sr.Sentiment.Neg, Neu: sr.Sentiment.Neu, Pos: sr.Sentiment.Pos, Compound: sr.Sentiment.Compound},
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, &domain.MalformedInputError{Param: "form", Value: r.Header.Get("Content-Type"), Err: err})
		return
	}

	rv, err := h.W.Create(r.Context(), r.PostForm.Get("ReviewBody"), r.PostForm.Get("Location"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewDTO(rv))
}
