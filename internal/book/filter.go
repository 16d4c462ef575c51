package book

import (
	"sort"
	"strings"
)

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Status Status
	Genre  string
	Search string // matches title, author, or genre
}

// Apply returns the subset of books matching all non-empty filter fields.
func (f Filter) Apply(books []Book) []Book {
	var out []Book
	for _, b := range books {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Genre != "" && !strings.EqualFold(b.Genre, f.Genre) {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Genres returns the distinct non-empty genres in encounter order.
func Genres(books []Book) []string {
	seen := map[string]bool{}
	var out []string
	for _, b := range books {
		if b.Genre == "" || seen[b.Genre] {
			continue
		}
		seen[b.Genre] = true
		out = append(out, b.Genre)
	}
	return out
}

// Sort fields accepted by SortBooks.
const (
	SortTitle     = "title"
	SortAuthor    = "author"
	SortDateAdded = "added"
	SortRating    = "rating"
)

// SortBooks orders books by the given field. Missing ratings compare as 0.
// The sort is stable so equal keys keep their relative order.
func SortBooks(books []Book, field string, desc bool) {
	less := func(a, b Book) bool { return a.DateAdded.Before(b.DateAdded) }
	switch field {
	case SortTitle:
		less = func(a, b Book) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortAuthor:
		less = func(a, b Book) bool {
			return strings.ToLower(a.Author) < strings.ToLower(b.Author)
		}
	case SortRating:
		less = func(a, b Book) bool { return a.Rating < b.Rating }
	}
	sort.SliceStable(books, func(i, j int) bool {
		if desc {
			return less(books[j], books[i])
		}
		return less(books[i], books[j])
	})
}

func matchesSearch(b Book, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), q) {
		return true
	}
	return b.Genre != "" && strings.Contains(strings.ToLower(b.Genre), q)
}
