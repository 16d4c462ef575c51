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

func newEditCmd() *cobra.Command {
	var (
		title     string
		author    string
		status    string
		genre     string
		notes     string
		pageCount int
		rating    int
		coverPath string
		dropCover bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a book's details",
		Long: `Update fields on an existing book. Only the flags you pass change;
everything else is left as is. Without flags, opens the interactive form.

Moving a book's status to Completed records the completion date. Moving it
away again keeps that date as history.

Examples:
  readlog edit 3f2a --rating 5 --notes "Reread someday."
  readlog edit 3f2a --status Completed
  readlog edit 3f2a --cover ~/covers/lhod.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBook(args[0])
			if err != nil {
				return err
			}

			// No field flags at all: interactive edit.
			fieldFlags := []string{"title", "author", "status", "genre", "notes", "pages", "rating", "cover", "no-cover"}
			anyFlag := false
			for _, name := range fieldFlags {
				if cmd.Flags().Changed(name) {
					anyFlag = true
					break
				}
			}

			if !anyFlag {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("no fields given, pass at least one field flag")
				}
				filled, err := tui.RunBookForm(tui.BookFormDefaults{Heading: "Edit Book", Book: b})
				if err != nil {
					warn("Cancelled.")
					return nil
				}
				err = st.Update(b.ID, func(cur *book.Book) {
					cur.Title = filled.Title
					cur.Author = filled.Author
					cur.Genre = filled.Genre
					cur.Notes = filled.Notes
					cur.PageCount = filled.PageCount
					cur.Rating = filled.Rating
					stampCompletion(cur, filled.Status, time.Now())
				})
				if err != nil {
					return err
				}
				b, _ = st.Get(b.ID)
				ok("Updated: %s", b.Title)
				return nil
			}

			// Validate at the edge before touching the store.
			var newStatus book.Status
			if cmd.Flags().Changed("status") {
				newStatus = book.Status(status)
				if !newStatus.Valid() {
					return fmt.Errorf("invalid status %q, one of: To Read, Reading, Completed", status)
				}
			}
			if cmd.Flags().Changed("title") && strings.TrimSpace(title) == "" {
				return fmt.Errorf("title must not be empty")
			}
			if cmd.Flags().Changed("author") && strings.TrimSpace(author) == "" {
				return fmt.Errorf("author must not be empty")
			}
			if cmd.Flags().Changed("rating") && (rating < 1 || rating > 5) {
				return fmt.Errorf("rating must be between 1 and 5")
			}
			if cmd.Flags().Changed("pages") && pageCount <= 0 {
				return fmt.Errorf("pages must be positive")
			}

			var cover string
			if coverPath != "" {
				cover, err = util.LoadCoverArt(coverPath)
				if err != nil {
					return err
				}
			}

			err = st.Update(b.ID, func(cur *book.Book) {
				if cmd.Flags().Changed("title") {
					cur.Title = strings.TrimSpace(title)
				}
				if cmd.Flags().Changed("author") {
					cur.Author = strings.TrimSpace(author)
				}
				if cmd.Flags().Changed("genre") {
					cur.Genre = strings.TrimSpace(genre)
				}
				if cmd.Flags().Changed("notes") {
					cur.Notes = notes
				}
				if cmd.Flags().Changed("pages") {
					cur.PageCount = pageCount
					if cur.CurrentPage > pageCount {
						cur.CurrentPage = pageCount
					}
				}
				if cmd.Flags().Changed("rating") {
					cur.Rating = rating
				}
				if cover != "" {
					cur.CoverArt = cover
				}
				if dropCover {
					cur.CoverArt = ""
				}
				if cmd.Flags().Changed("status") {
					stampCompletion(cur, newStatus, time.Now())
				}
			})
			if err != nil {
				return err
			}

			b, _ = st.Get(b.ID)
			ok("Updated: %s", b.Title)
			fmt.Println()
			printBookDetail(b)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&author, "author", "", "New author")
	cmd.Flags().StringVar(&status, "status", "", "New status: To Read, Reading, Completed")
	cmd.Flags().StringVar(&genre, "genre", "", "New genre (empty clears it)")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes (empty clears them)")
	cmd.Flags().IntVar(&pageCount, "pages", 0, "New total page count")
	cmd.Flags().IntVar(&rating, "rating", 0, "New rating 1-5")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a new cover image")
	cmd.Flags().BoolVar(&dropCover, "no-cover", false, "Remove the stored cover image")

	return cmd
}
