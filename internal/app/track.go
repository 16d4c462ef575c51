package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/book"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a book as currently reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBook(args[0])
			if err != nil {
				return err
			}
			if b.Status == book.StatusReading {
				warn("Already reading: %s", b.Title)
				return nil
			}
			err = st.Update(b.ID, func(cur *book.Book) {
				cur.Status = book.StatusReading
			})
			if err != nil {
				return err
			}
			ok("Started: %s", b.Title)
			return nil
		},
	}
}

func newFinishCmd() *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   "finish <id>",
		Short: "Mark a book as completed",
		Long: `Mark a book as completed, recording today as the completion date.
Finishing an already completed book leaves its original date alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBook(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rating") && (rating < 1 || rating > 5) {
				return fmt.Errorf("rating must be between 1 and 5")
			}

			err = st.Update(b.ID, func(cur *book.Book) {
				stampCompletion(cur, book.StatusCompleted, time.Now())
				if cur.PageCount > 0 {
					cur.CurrentPage = cur.PageCount
				}
				if cmd.Flags().Changed("rating") {
					cur.Rating = rating
				}
			})
			if err != nil {
				return err
			}

			b, _ = st.Get(b.ID)
			ok("Finished: %s", b.Title)
			if b.Rating > 0 {
				fmt.Printf("  rated %s\n", stars(b.Rating))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "Rate the book 1-5 while finishing it")
	return cmd
}

func newProgressCmd() *cobra.Command {
	var minutes int
	var note string

	cmd := &cobra.Command{
		Use:   "progress <id> <page>",
		Short: "Record the page you are on",
		Long: `Record reading progress as the current page. The page is clamped to
the book's page count; books without a page count can't track progress.
Moving forward logs a reading session, visible under 'readlog show'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBook(args[0])
			if err != nil {
				return err
			}

			var page int
			if _, err := fmt.Sscanf(args[1], "%d", &page); err != nil {
				return fmt.Errorf("page must be a number: %q", args[1])
			}
			if b.PageCount <= 0 {
				return fmt.Errorf("%q has no page count, set one with: readlog edit %s --pages N",
					b.Title, shortID(b.ID))
			}

			// Clamp at the edge; the store does not police this field.
			if page < 0 {
				page = 0
			}
			if page > b.PageCount {
				page = b.PageCount
			}

			err = st.Update(b.ID, func(cur *book.Book) {
				cur.CurrentPage = page
				if cur.Status == book.StatusToRead && page > 0 {
					cur.Status = book.StatusReading
				}
			})
			if err != nil {
				return err
			}

			// One sitting per invocation: the delta from the last known
			// page becomes the session's page count.
			if delta := page - b.CurrentPage; delta > 0 || minutes > 0 {
				if delta < 0 {
					delta = 0
				}
				_, err = st.AddSession(book.ReadingSession{
					BookID:    b.ID,
					PagesRead: delta,
					TimeSpent: minutes,
					Notes:     note,
				})
				if err != nil {
					return err
				}
			}

			b, _ = st.Get(b.ID)
			ok("%s: page %d of %d (%d%%)", b.Title, b.CurrentPage, b.PageCount, b.ProgressPercent())
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes spent in this sitting")
	cmd.Flags().StringVar(&note, "note", "", "Note about this sitting")
	return cmd
}
