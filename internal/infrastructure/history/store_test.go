package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/ports"
)

func testRecord(language string, at time.Time) domain.RunRecord {
	return domain.RunRecord{
		Timestamp:  at,
		Language:   language,
		Version:    "latest",
		Filename:   "main." + language,
		OutputSize: 3,
		DurationMS: 120,
	}
}

func runStoreTests(t *testing.T, store ports.HistoryStore) {
	t.Helper()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i, language := range []string{"python", "go", "ruby"} {
		if err := store.Save(testRecord(language, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].Language != "ruby" || records[2].Language != "python" {
		t.Errorf("order = %s, %s, %s", records[0].Language, records[1].Language, records[2].Language)
	}

	limited, err := store.Records(2)
	if err != nil {
		t.Fatalf("Records(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err = store.Records(0)
	if err != nil {
		t.Fatalf("Records() after Clear error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len after Clear = %d, want 0", len(records))
	}
}

func TestFileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
	runStoreTests(t, store)
}

func TestSQLiteStore(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	runStoreTests(t, store)
}

func TestSQLiteStoreKeepsFailureDetails(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	rec := testRecord("go", time.Now())
	rec.Failed = true
	rec.Error = "glot: HTTP 500: Internal Server Error"
	if err := store.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(1)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || !records[0].Failed || records[0].Error != rec.Error {
		t.Errorf("records = %+v", records)
	}
}
