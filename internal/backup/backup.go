// Package backup reads and writes the portable snapshot document used for
// data export and import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/readlog/internal/book"
)

// Version tags the document schema.
const Version = "1.0"

// ErrInvalidFormat is returned when an import document is not a backup:
// unparseable JSON, no "books" key, or a "books" value that is not a list.
var ErrInvalidFormat = errors.New("invalid backup format")

// Document is the export file shape: the full book list plus provenance.
type Document struct {
	Books      []book.Book `json:"books"`
	ExportDate time.Time   `json:"exportDate"`
	Version    string      `json:"version"`
}

// Export wraps a snapshot into a document stamped with now.
func Export(books []book.Book, now time.Time) Document {
	if books == nil {
		books = []book.Book{}
	}
	return Document{
		Books:      books,
		ExportDate: now.UTC(),
		Version:    Version,
	}
}

// Marshal encodes the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Decode extracts the book list from a backup document. Only the "books"
// array is consulted; records inside it are returned verbatim with no
// per-field revalidation.
func Decode(data []byte) ([]book.Book, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	booksRaw, ok := raw["books"]
	if !ok {
		return nil, fmt.Errorf("%w: missing books list", ErrInvalidFormat)
	}

	var books []book.Book
	if err := json.Unmarshal(booksRaw, &books); err != nil {
		return nil, fmt.Errorf("%w: books is not a list of records: %v", ErrInvalidFormat, err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

// DefaultFilename names the export artifact with the current date.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("reading-list-backup-%s.json", now.Format("2006-01-02"))
}
