// Package stats derives aggregate numbers from a snapshot of the catalog.
// Every function is pure and total: given any book list, it returns a value
// without failing. Nothing here caches; callers recompute from a fresh
// snapshot when the catalog changes.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/blackwell-systems/readlog/internal/book"
)

// Summary holds the per-status counts for a snapshot.
type Summary struct {
	ToRead    int `json:"toRead"`
	Reading   int `json:"reading"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Summarize counts books per status.
func Summarize(books []book.Book) Summary {
	var s Summary
	for _, b := range books {
		switch b.Status {
		case book.StatusToRead:
			s.ToRead++
		case book.StatusReading:
			s.Reading++
		case book.StatusCompleted:
			s.Completed++
		}
	}
	s.Total = len(books)
	return s
}

// Count returns the number of books with the given status.
func Count(books []book.Book, status book.Status) int {
	n := 0
	for _, b := range books {
		if b.Status == status {
			n++
		}
	}
	return n
}

// AverageRating is the mean rating over rated books, 0 when none are rated.
func AverageRating(books []book.Book) float64 {
	sum, n := 0, 0
	for _, b := range books {
		if b.Rating > 0 {
			sum += b.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// TotalPages sums PageCount over books that have one recorded.
func TotalPages(books []book.Book) int {
	total := 0
	for _, b := range books {
		if b.PageCount > 0 {
			total += b.PageCount
		}
	}
	return total
}

// AveragePages is the mean PageCount over books that have one, 0 when none do.
func AveragePages(books []book.Book) int {
	sum, n := 0, 0
	for _, b := range books {
		if b.PageCount > 0 {
			sum += b.PageCount
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// PagesRead sums PageCount over completed books.
func PagesRead(books []book.Book) int {
	total := 0
	for _, b := range books {
		if b.Status == book.StatusCompleted && b.PageCount > 0 {
			total += b.PageCount
		}
	}
	return total
}

// CompletionRate is the rounded percentage of books completed, 0 for an
// empty snapshot.
func CompletionRate(books []book.Book) int {
	if len(books) == 0 {
		return 0
	}
	completed := Count(books, book.StatusCompleted)
	return int(math.Round(float64(completed) / float64(len(books)) * 100))
}

// MonthlyCompletions buckets books with a completion date by "YYYY-MM".
// An empty snapshot yields an empty map.
func MonthlyCompletions(books []book.Book) map[string]int {
	out := map[string]int{}
	for _, b := range books {
		if !b.Completed() {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", b.CompletedDate.Year(), int(b.CompletedDate.Month()))
		out[key]++
	}
	return out
}

// SortedMonths returns the histogram's keys newest-first.
func SortedMonths(hist map[string]int) []string {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// GenreCount is one row of the genre distribution.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreCounts tallies books per non-empty genre, most common first.
// Ties keep first-encounter order (stable sort).
func GenreCounts(books []book.Book) []GenreCount {
	idx := map[string]int{}
	var out []GenreCount
	for _, b := range books {
		if b.Genre == "" {
			continue
		}
		i, seen := idx[b.Genre]
		if !seen {
			idx[b.Genre] = len(out)
			out = append(out, GenreCount{Genre: b.Genre})
			i = len(out) - 1
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// RecentCompletions returns the n most recently completed books, newest
// first. n <= 0 falls back to 6, matching the dashboard's recent list.
func RecentCompletions(books []book.Book, n int) []book.Book {
	if n <= 0 {
		n = 6
	}
	var done []book.Book
	for _, b := range books {
		if b.Completed() {
			done = append(done, b)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedDate.After(*done[j].CompletedDate)
	})
	if len(done) > n {
		done = done[:n]
	}
	return done
}

// CompletedInYear counts books completed in the given calendar year.
func CompletedInYear(books []book.Book, year int) int {
	n := 0
	for _, b := range books {
		if b.Completed() && b.CompletedDate.Year() == year {
			n++
		}
	}
	return n
}

// CompletedInMonth counts books completed in a specific month of a year.
func CompletedInMonth(books []book.Book, year int, month int) int {
	n := 0
	for _, b := range books {
		if !b.Completed() {
			continue
		}
		if b.CompletedDate.Year() == year && int(b.CompletedDate.Month()) == month {
			n++
		}
	}
	return n
}
