package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/blackwell-systems/readlog/internal/book"
)

// resolveBook finds a record by id or by an unambiguous id prefix, so users
// can type the first few characters of a UUID.
func resolveBook(id string) (book.Book, error) {
	if b, err := st.Get(id); err == nil {
		return b, nil
	}

	books, err := st.List()
	if err != nil {
		return book.Book{}, err
	}

	var matches []book.Book
	for _, b := range books {
		if strings.HasPrefix(b.ID, id) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return book.Book{}, fmt.Errorf("no book with id %q", id)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, b := range matches {
			ids[i] = shortID(b.ID)
		}
		return book.Book{}, fmt.Errorf("id %q is ambiguous: matches %s", id, strings.Join(ids, ", "))
	}
}

// confirm prompts for a yes/no answer, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// statusColored renders a status with its usual color.
func statusColored(s book.Status) string {
	switch s {
	case book.StatusReading:
		return color.YellowString(string(s))
	case book.StatusCompleted:
		return color.GreenString(string(s))
	default:
		return string(s)
	}
}

// stars renders a 1-5 rating as filled stars, or a dash when unrated.
func stars(rating int) string {
	if rating <= 0 {
		return "—"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// printBookDetail writes the full record to stdout.
func printBookDetail(b book.Book) {
	fmt.Printf("  id:        %s\n", color.WhiteString(b.ID))
	fmt.Printf("  title:     %s\n", b.Title)
	fmt.Printf("  author:    %s\n", b.Author)
	fmt.Printf("  status:    %s\n", statusColored(b.Status))
	fmt.Printf("  added:     %s\n", b.DateAdded.Local().Format("2006-01-02"))
	if b.CompletedDate != nil {
		fmt.Printf("  completed: %s\n", b.CompletedDate.Local().Format("2006-01-02"))
	}
	if b.Genre != "" {
		fmt.Printf("  genre:     %s\n", color.CyanString(b.Genre))
	}
	if b.Rating > 0 {
		fmt.Printf("  rating:    %s\n", color.YellowString(stars(b.Rating)))
	}
	if b.PageCount > 0 {
		fmt.Printf("  pages:     %d", b.PageCount)
		if b.CurrentPage > 0 {
			fmt.Printf("  (at page %d — %d%%)", b.CurrentPage, b.ProgressPercent())
		}
		fmt.Println()
	}
	if b.CoverArt != "" {
		fmt.Printf("  cover:     %s\n", coverSummary(b.CoverArt))
	}
	if b.Notes != "" {
		fmt.Printf("  notes:     %s\n", b.Notes)
	}
}

// printSessions lists the reading sessions logged for a book, most recent
// last. Nothing is printed when no sessions exist.
func printSessions(bookID string) {
	sessions, err := st.SessionsFor(bookID)
	if err != nil || len(sessions) == 0 {
		return
	}
	fmt.Printf("  sessions:  %d logged\n", len(sessions))
	start := 0
	if len(sessions) > 5 {
		start = len(sessions) - 5
	}
	for _, sess := range sessions[start:] {
		line := fmt.Sprintf("    %s", sess.Date.Local().Format("2006-01-02"))
		if sess.PagesRead > 0 {
			line += fmt.Sprintf("  %d pages", sess.PagesRead)
		}
		if sess.TimeSpent > 0 {
			line += fmt.Sprintf("  %d min", sess.TimeSpent)
		}
		if sess.Notes != "" {
			line += "  " + sess.Notes
		}
		fmt.Println(line)
	}
}

// coverSummary summarizes a stored cover without dumping the blob.
func coverSummary(coverArt string) string {
	mime := "image"
	if strings.HasPrefix(coverArt, "data:") {
		if i := strings.IndexByte(coverArt, ';'); i > 5 {
			mime = coverArt[5:i]
		}
	}
	return fmt.Sprintf("%s, %d bytes stored", mime, len(coverArt))
}

// stampCompletion applies the status transition policy: moving into
// Completed from any other status records the completion time. Moving away
// from Completed keeps the old date as history.
func stampCompletion(b *book.Book, newStatus book.Status, now time.Time) {
	if newStatus == book.StatusCompleted && b.Status != book.StatusCompleted {
		t := now.UTC()
		b.CompletedDate = &t
	}
	b.Status = newStatus
}
