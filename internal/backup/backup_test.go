package backup_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/readlog/internal/backup"
	"github.com/blackwell-systems/readlog/internal/book"
)

func TestExportDecode_RoundTrip(t *testing.T) {
	done := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	books := []book.Book{
		{
			ID:            "a1",
			Title:         "The Dispossessed",
			Author:        "Ursula K. Le Guin",
			Status:        book.StatusCompleted,
			DateAdded:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			CompletedDate: &done,
			Genre:         "Science Fiction",
			Rating:        5,
			PageCount:     387,
		},
		{
			ID:        "b2",
			Title:     "Piranesi",
			Author:    "Susanna Clarke",
			Status:    book.StatusReading,
			DateAdded: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	now := time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC)
	doc := backup.Export(books, now)
	if doc.Version != backup.Version {
		t.Errorf("Version = %q, want %q", doc.Version, backup.Version)
	}
	if !doc.ExportDate.Equal(now) {
		t.Errorf("ExportDate = %v, want %v", doc.ExportDate, now)
	}

	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := backup.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(books) {
		t.Fatalf("round trip returned %d books, want %d", len(got), len(books))
	}
	for i := range books {
		want := books[i]
		b := got[i]
		if b.ID != want.ID || b.Title != want.Title || b.Author != want.Author ||
			b.Status != want.Status || b.Genre != want.Genre ||
			b.Rating != want.Rating || b.PageCount != want.PageCount {
			t.Errorf("book %d changed across round trip:\n got %+v\nwant %+v", i, b, want)
		}
		if !b.DateAdded.Equal(want.DateAdded) {
			t.Errorf("book %d DateAdded = %v, want %v", i, b.DateAdded, want.DateAdded)
		}
	}
	if got[0].CompletedDate == nil || !got[0].CompletedDate.Equal(done) {
		t.Errorf("CompletedDate lost across round trip: %v", got[0].CompletedDate)
	}
	if got[1].CompletedDate != nil {
		t.Errorf("absent CompletedDate materialized: %v", got[1].CompletedDate)
	}
}

func TestExport_NilSnapshot(t *testing.T) {
	doc := backup.Export(nil, time.Now())
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// An empty library serializes as [], never null.
	if !strings.Contains(string(data), `"books": []`) {
		t.Errorf("empty export should carry an empty array:\n%s", data)
	}
}

func TestDecode_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unparseable", `{not json`},
		{"missing books key", `{"exportDate": "2024-06-01T00:00:00Z", "version": "1.0"}`},
		{"books is not a list", `{"books": {"id": "a1"}}`},
		{"books is a scalar", `{"books": 7}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := backup.Decode([]byte(tc.data))
			if !errors.Is(err, backup.ErrInvalidFormat) {
				t.Errorf("Decode(%s): expected ErrInvalidFormat, got %v", tc.name, err)
			}
		})
	}
}

func TestDecode_IgnoresExtraKeys(t *testing.T) {
	data := `{"books": [], "version": "2.0", "exportDate": "bogus", "extra": true}`
	books, err := backup.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode with extra keys: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("got %d books, want 0", len(books))
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)
	got := backup.DefaultFilename(now)
	if got != "reading-list-backup-2024-06-01.json" {
		t.Errorf("DefaultFilename = %q", got)
	}
}
