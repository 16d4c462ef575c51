package book

import "time"

// Status is a book's place in the reading pipeline.
type Status string

const (
	StatusToRead    Status = "To Read"
	StatusReading   Status = "Reading"
	StatusCompleted Status = "Completed"
)

// Statuses lists every valid status in pipeline order.
var Statuses = []Status{StatusToRead, StatusReading, StatusCompleted}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// Book is one catalogued title. ID and DateAdded are assigned by the store
// at creation and never change afterwards.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Status        Status     `json:"status"`
	DateAdded     time.Time  `json:"dateAdded"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	Genre         string     `json:"genre,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Rating        int        `json:"rating,omitempty"`
	PageCount     int        `json:"pageCount,omitempty"`
	CurrentPage   int        `json:"currentPage,omitempty"`
	CoverArt      string     `json:"coverArt,omitempty"`
}

// Completed reports whether the book has a completion date recorded.
// A book can carry a completion date even after its status moved away from
// Completed. The date is kept as history, not cleared.
func (b Book) Completed() bool {
	return b.CompletedDate != nil
}

// ProgressPercent derives a reading progress percentage from CurrentPage.
// Returns 0 when no page count is recorded.
func (b Book) ProgressPercent() int {
	if b.PageCount <= 0 {
		return 0
	}
	p := b.CurrentPage * 100 / b.PageCount
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
