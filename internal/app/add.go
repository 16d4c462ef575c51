package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/book"
	"github.com/blackwell-systems/readlog/internal/tui"
	"github.com/blackwell-systems/readlog/internal/util"
)

func newAddCmd() *cobra.Command {
	var (
		author    string
		status    string
		genre     string
		notes     string
		pageCount int
		rating    int
		coverPath string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a book to your reading list",
		Long: `Add a book to your reading list.

With a title and --author the book is added directly. Run without arguments
in a terminal to fill in the details interactively.

Examples:
  readlog add "The Left Hand of Darkness" --author "Ursula K. Le Guin" --genre sf
  readlog add "Gödel, Escher, Bach" --author "Douglas Hofstadter" --pages 777 --status Reading
  readlog add`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data tui.BookFormData

			if len(args) == 0 {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("title required in non-interactive mode")
				}
				filled, err := tui.RunBookForm(tui.BookFormDefaults{Heading: "Add Book"})
				if err != nil {
					warn("Cancelled.")
					return nil
				}
				data = *filled
			} else {
				// Required fields are validated here, at the edge, so the
				// store accepts whatever it is given.
				title := strings.TrimSpace(args[0])
				if title == "" {
					return fmt.Errorf("title must not be empty")
				}
				if strings.TrimSpace(author) == "" {
					return fmt.Errorf("--author is required")
				}

				s := book.StatusToRead
				if status != "" {
					s = book.Status(status)
					if !s.Valid() {
						return fmt.Errorf("invalid status %q, one of: To Read, Reading, Completed", status)
					}
				}
				if rating != 0 && (rating < 1 || rating > 5) {
					return fmt.Errorf("rating must be between 1 and 5")
				}
				if pageCount < 0 {
					return fmt.Errorf("pages must be positive")
				}

				data = tui.BookFormData{
					Title:     title,
					Author:    strings.TrimSpace(author),
					Status:    s,
					Genre:     strings.TrimSpace(genre),
					Notes:     notes,
					PageCount: pageCount,
					Rating:    rating,
				}
			}

			b := book.Book{
				Title:     data.Title,
				Author:    data.Author,
				Status:    data.Status,
				Genre:     data.Genre,
				Notes:     data.Notes,
				PageCount: data.PageCount,
				Rating:    data.Rating,
			}

			if coverPath != "" {
				cover, err := util.LoadCoverArt(coverPath)
				if err != nil {
					return err
				}
				b.CoverArt = cover
			}

			// A book can be catalogued as already finished.
			if b.Status == book.StatusCompleted {
				now := time.Now().UTC()
				b.CompletedDate = &now
			}

			stored, err := st.Add(b)
			if err != nil {
				return fmt.Errorf("adding book: %w", err)
			}

			ok("Added: %s", stored.Title)
			fmt.Println()
			printBookDetail(stored)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Author (required unless interactive)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status: To Read, Reading, Completed (default: To Read)")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().IntVar(&pageCount, "pages", 0, "Total page count")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating 1-5")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a cover image (png/jpeg/gif/webp, max 2 MB)")

	return cmd
}
