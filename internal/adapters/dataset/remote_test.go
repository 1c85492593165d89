package dataset_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"review_analyzer/internal/adapters/dataset"
)

func TestRemote_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(503)
		default:
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(sample))
		}
	}))
	defer ts.Close()

	src, err := dataset.NewRemote(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := src.Rows(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 2 || rows[1]["ReviewId"] != "a2" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestRemote_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	src, err := dataset.NewRemote(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err = src.Rows(ctx); !errors.Is(err, dataset.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestRemote_RequiresURL(t *testing.T) {
	if _, err := dataset.NewRemote("", 1); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}
