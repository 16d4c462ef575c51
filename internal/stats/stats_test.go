package stats_test

import (
	"testing"
	"time"

	"github.com/blackwell-systems/readlog/internal/book"
	"github.com/blackwell-systems/readlog/internal/stats"
)

func completed(title string, year int, month time.Month, rating, pages int) book.Book {
	done := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	return book.Book{
		Title:         title,
		Author:        "Author",
		Status:        book.StatusCompleted,
		Rating:        rating,
		PageCount:     pages,
		CompletedDate: &done,
	}
}

func TestSummarize(t *testing.T) {
	books := []book.Book{
		{Status: book.StatusToRead},
		{Status: book.StatusToRead},
		{Status: book.StatusReading},
		completed("Done", 2024, time.January, 4, 300),
	}
	s := stats.Summarize(books)
	if s.ToRead != 2 || s.Reading != 1 || s.Completed != 1 || s.Total != 4 {
		t.Errorf("Summarize = %+v", s)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := stats.Summarize(nil)
	if s.Total != 0 || s.ToRead != 0 || s.Reading != 0 || s.Completed != 0 {
		t.Errorf("Summarize(nil) = %+v", s)
	}
}

func TestAverageRating(t *testing.T) {
	books := []book.Book{
		{Rating: 3},
		{Rating: 5},
		{Rating: 4},
		{}, // unrated, excluded from the mean
	}
	if got := stats.AverageRating(books); got != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", got)
	}
}

func TestAverageRating_NoneRated(t *testing.T) {
	books := []book.Book{{Title: "A"}, {Title: "B"}}
	if got := stats.AverageRating(books); got != 0 {
		t.Errorf("AverageRating with no rated books = %v, want 0", got)
	}
}

func TestPageTotals(t *testing.T) {
	books := []book.Book{
		completed("Done", 2024, time.January, 0, 300),
		{Status: book.StatusReading, PageCount: 200},
		{Status: book.StatusToRead}, // no page count
	}
	if got := stats.TotalPages(books); got != 500 {
		t.Errorf("TotalPages = %d, want 500", got)
	}
	if got := stats.AveragePages(books); got != 250 {
		t.Errorf("AveragePages = %d, want 250", got)
	}
	// Only completed books count as read.
	if got := stats.PagesRead(books); got != 300 {
		t.Errorf("PagesRead = %d, want 300", got)
	}
}

func TestCompletionRate(t *testing.T) {
	books := []book.Book{
		completed("One", 2024, time.January, 0, 0),
		{Status: book.StatusReading},
		{Status: book.StatusToRead},
	}
	// 1 of 3 rounds to 33.
	if got := stats.CompletionRate(books); got != 33 {
		t.Errorf("CompletionRate = %d, want 33", got)
	}
	if got := stats.CompletionRate(nil); got != 0 {
		t.Errorf("CompletionRate(nil) = %d, want 0", got)
	}
}

func TestMonthlyCompletions(t *testing.T) {
	books := []book.Book{
		completed("One", 2024, time.January, 0, 0),
		completed("Two", 2024, time.January, 0, 0),
		completed("Three", 2024, time.March, 0, 0),
		{Status: book.StatusReading}, // no completion date
	}
	hist := stats.MonthlyCompletions(books)
	want := map[string]int{"2024-01": 2, "2024-03": 1}
	if len(hist) != len(want) {
		t.Fatalf("MonthlyCompletions = %v, want %v", hist, want)
	}
	for k, v := range want {
		if hist[k] != v {
			t.Errorf("hist[%q] = %d, want %d", k, hist[k], v)
		}
	}
}

func TestSortedMonths_NewestFirst(t *testing.T) {
	hist := map[string]int{"2023-12": 1, "2024-03": 1, "2024-01": 2}
	got := stats.SortedMonths(hist)
	want := []string{"2024-03", "2024-01", "2023-12"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedMonths = %v, want %v", got, want)
		}
	}
}

func TestGenreCounts_TiesKeepEncounterOrder(t *testing.T) {
	books := []book.Book{
		{Genre: "Fantasy"},
		{Genre: "Science Fiction"},
		{Genre: "Science Fiction"},
		{Genre: "Mystery"},
		{Genre: ""}, // ungenred books are skipped
	}
	got := stats.GenreCounts(books)
	if len(got) != 3 {
		t.Fatalf("GenreCounts returned %d rows", len(got))
	}
	if got[0].Genre != "Science Fiction" || got[0].Count != 2 {
		t.Errorf("top genre = %+v", got[0])
	}
	// Fantasy and Mystery tie at 1; Fantasy was seen first.
	if got[1].Genre != "Fantasy" || got[2].Genre != "Mystery" {
		t.Errorf("tie order = %q then %q, want Fantasy then Mystery", got[1].Genre, got[2].Genre)
	}
}

func TestRecentCompletions(t *testing.T) {
	var books []book.Book
	for m := time.January; m <= time.August; m++ {
		books = append(books, completed("Book", 2024, m, 0, 0))
	}

	got := stats.RecentCompletions(books, 0)
	if len(got) != 6 {
		t.Fatalf("default recent list has %d entries, want 6", len(got))
	}
	if got[0].CompletedDate.Month() != time.August {
		t.Errorf("newest completion is %v, want August", got[0].CompletedDate.Month())
	}
	if got[5].CompletedDate.Month() != time.March {
		t.Errorf("oldest kept completion is %v, want March", got[5].CompletedDate.Month())
	}

	if got := stats.RecentCompletions(books, 2); len(got) != 2 {
		t.Errorf("RecentCompletions(books, 2) has %d entries", len(got))
	}
}

func TestCompletedInYearAndMonth(t *testing.T) {
	books := []book.Book{
		completed("One", 2024, time.January, 0, 0),
		completed("Two", 2024, time.June, 0, 0),
		completed("Three", 2023, time.June, 0, 0),
	}
	if got := stats.CompletedInYear(books, 2024); got != 2 {
		t.Errorf("CompletedInYear(2024) = %d, want 2", got)
	}
	if got := stats.CompletedInMonth(books, 2024, 6); got != 1 {
		t.Errorf("CompletedInMonth(2024, 6) = %d, want 1", got)
	}
	if got := stats.CompletedInMonth(books, 2025, 1); got != 0 {
		t.Errorf("CompletedInMonth(2025, 1) = %d, want 0", got)
	}
}
