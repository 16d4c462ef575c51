package book

import "time"

// ReadingSession records one sitting with a book. Sessions are written by
// the progress command and listed alongside the book's detail view.
//
// BookID is a plain lookup key, not an owning reference; deleting a book
// leaves its sessions dangling.
type ReadingSession struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Date      time.Time `json:"date"`
	PagesRead int       `json:"pagesRead"`
	TimeSpent int       `json:"timeSpent"` // minutes
	Notes     string    `json:"notes,omitempty"`
}
