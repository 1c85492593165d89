package dataset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"review_analyzer/internal/adapters/dataset"
)

const sample = "\ufeffReviewId,Timestamp,Location,ReviewBody\n" +
	"a1,2021-01-01 10:00:00,\"San Diego, California\",\"Great, really \"\"great\"\" food\"\n" +
	"a2,2021-06-01 11:00:00,\"Denver, Colorado\",Meh\n"

func TestParseCSV(t *testing.T) {
	rows, err := dataset.ParseCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	r := rows[0]
	if r["ReviewId"] != "a1" || r["Location"] != "San Diego, California" || r["ReviewBody"] != `Great, really "great" food` {
		t.Fatalf("unexpected row: %#v", r)
	}
	if rows[1]["Timestamp"] != "2021-06-01 11:00:00" {
		t.Fatalf("unexpected row: %#v", rows[1])
	}
}

func TestParseCSV_ShortRecordAndEmptyInput(t *testing.T) {
	rows, err := dataset.ParseCSV(strings.NewReader("A,B,C\n1,2\n"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 1 || rows[0]["B"] != "2" || rows[0]["C"] != "" {
		t.Fatalf("unexpected rows: %#v", rows)
	}

	rows, err = dataset.ParseCSV(strings.NewReader(""))
	if err != nil || rows != nil {
		t.Fatalf("empty input: %v %v", rows, err)
	}
}

func TestFile_Rows(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reviews.csv")
	if err := os.WriteFile(p, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := dataset.NewFile(p).Rows(context.Background())
	if err != nil || len(rows) != 2 {
		t.Fatalf("rows=%d err=%v", len(rows), err)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := dataset.NewFile(filepath.Join(t.TempDir(), "nope.csv")).Rows(context.Background())
	if !errors.Is(err, dataset.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}
