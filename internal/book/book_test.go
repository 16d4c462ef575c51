package book_test

import (
	"testing"
	"time"

	"github.com/blackwell-systems/readlog/internal/book"
)

func sample() []book.Book {
	added := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []book.Book{
		{ID: "a", Title: "The Dispossessed", Author: "Ursula K. Le Guin", Status: book.StatusCompleted, Genre: "Science Fiction", Rating: 5, DateAdded: added},
		{ID: "b", Title: "Piranesi", Author: "Susanna Clarke", Status: book.StatusReading, Genre: "Fantasy", DateAdded: added.AddDate(0, 0, 1)},
		{ID: "c", Title: "A Memory Called Empire", Author: "Arkady Martine", Status: book.StatusToRead, Genre: "Science Fiction", Rating: 4, DateAdded: added.AddDate(0, 0, 2)},
	}
}

// --- Status ---

func TestStatus_Valid(t *testing.T) {
	for _, s := range book.Statuses {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if book.Status("Abandoned").Valid() {
		t.Error("unknown status should not be valid")
	}
	if book.Status("").Valid() {
		t.Error("empty status should not be valid")
	}
}

// --- Completed ---

func TestCompleted_TracksDateNotStatus(t *testing.T) {
	done := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	b := book.Book{Status: book.StatusCompleted}
	if b.Completed() {
		t.Error("no completion date recorded, Completed() should be false")
	}
	// The date survives a move back to Reading and still counts as history.
	b = book.Book{Status: book.StatusReading, CompletedDate: &done}
	if !b.Completed() {
		t.Error("a recorded completion date should report Completed()")
	}
}

// --- ProgressPercent ---

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		pages   int
		current int
		want    int
	}{
		{"no page count", 0, 50, 0},
		{"halfway", 300, 150, 50},
		{"start", 300, 0, 0},
		{"done", 300, 300, 100},
		{"overshoot clamps", 300, 400, 100},
		{"negative clamps", 300, -5, 0},
	}
	for _, tt := range tests {
		b := book.Book{PageCount: tt.pages, CurrentPage: tt.current}
		if got := b.ProgressPercent(); got != tt.want {
			t.Errorf("%s: ProgressPercent() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// --- Filter ---

func TestFilter_ByStatus(t *testing.T) {
	f := book.Filter{Status: book.StatusReading}
	got := f.Apply(sample())
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("status filter: got %v", ids(got))
	}
}

func TestFilter_ByGenreCaseInsensitive(t *testing.T) {
	f := book.Filter{Genre: "science fiction"}
	got := f.Apply(sample())
	if len(got) != 2 {
		t.Errorf("genre filter: expected 2, got %v", ids(got))
	}
}

func TestFilter_BySearch_Author(t *testing.T) {
	f := book.Filter{Search: "le guin"}
	got := f.Apply(sample())
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("search by author: got %v", ids(got))
	}
}

func TestFilter_Combined(t *testing.T) {
	f := book.Filter{Status: book.StatusToRead, Genre: "Science Fiction"}
	got := f.Apply(sample())
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("combined filter: got %v", ids(got))
	}
}

func TestFilter_Empty_ReturnsAll(t *testing.T) {
	got := book.Filter{}.Apply(sample())
	if len(got) != 3 {
		t.Errorf("empty filter should return all books, got %d", len(got))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := book.Filter{Search: "zzznomatch"}.Apply(sample())
	if len(got) != 0 {
		t.Errorf("expected 0 results, got %d", len(got))
	}
}

// --- Genres ---

func TestGenres_DistinctEncounterOrder(t *testing.T) {
	got := book.Genres(sample())
	want := []string{"Science Fiction", "Fantasy"}
	if len(got) != len(want) {
		t.Fatalf("Genres() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Genres()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// --- SortBooks ---

func TestSortBooks_ByRating_MissingAsZero(t *testing.T) {
	books := sample()
	book.SortBooks(books, book.SortRating, false)
	// "b" has no rating and must sort first when ascending.
	if books[0].ID != "b" {
		t.Errorf("unrated book should sort as 0, got order %v", ids(books))
	}
	if books[2].ID != "a" {
		t.Errorf("highest rated book should sort last, got order %v", ids(books))
	}
}

func TestSortBooks_ByTitleDesc(t *testing.T) {
	books := sample()
	book.SortBooks(books, book.SortTitle, true)
	if books[0].ID != "a" { // "The Dispossessed"
		t.Errorf("title desc: got order %v", ids(books))
	}
}

func TestSortBooks_DefaultByDateAdded(t *testing.T) {
	books := sample()
	book.SortBooks(books, "bogus-field", false)
	if books[0].ID != "a" || books[2].ID != "c" {
		t.Errorf("date added asc: got order %v", ids(books))
	}
}

func ids(books []book.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}
