package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/book"
	"github.com/blackwell-systems/readlog/internal/tui"
	"github.com/blackwell-systems/readlog/internal/util"
)

func newBrowseCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse your library interactively",
		Long: `Open the interactive library browser. Type / to filter, enter for
details, s to start a book, f to finish one, d to delete, q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsTTY() {
				return fmt.Errorf("browse needs a terminal, use 'readlog list' instead")
			}
			return runBrowse(status)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Pre-filter by status")
	return cmd
}

// runBrowse drives the browser loop: show the list, apply the chosen
// action, and show the list again until the user quits.
func runBrowse(status string) error {
	for {
		books, err := st.List()
		if err != nil {
			return fmt.Errorf("loading library: %w", err)
		}

		f := book.Filter{}
		if status != "" {
			f.Status = book.Status(status)
			if !f.Status.Valid() {
				return fmt.Errorf("invalid status %q", status)
			}
		}
		books = f.Apply(books)
		book.SortBooks(books, book.SortDateAdded, true)

		if len(books) == 0 {
			warn("Your library is empty. Add a book with: readlog add")
			return nil
		}

		result, err := tui.RunBrowser(books, fmt.Sprintf("Reading List — %d book(s)", len(books)))
		if err != nil {
			return err
		}

		switch result.Action {
		case tui.ActionNone:
			return nil

		case tui.ActionShowDetails:
			fmt.Println()
			printBookDetail(result.Book)
			fmt.Println()
			return nil

		case tui.ActionStart:
			err = st.Update(result.Book.ID, func(cur *book.Book) {
				cur.Status = book.StatusReading
			})
			if err != nil {
				return err
			}
			ok("Started: %s", result.Book.Title)

		case tui.ActionFinish:
			err = st.Update(result.Book.ID, func(cur *book.Book) {
				stampCompletion(cur, book.StatusCompleted, time.Now())
				if cur.PageCount > 0 {
					cur.CurrentPage = cur.PageCount
				}
			})
			if err != nil {
				return err
			}
			ok("Finished: %s", result.Book.Title)

		case tui.ActionDelete:
			if !confirm(fmt.Sprintf("Remove %q by %s?", result.Book.Title, result.Book.Author)) {
				continue
			}
			if err := st.Remove(result.Book.ID); err != nil {
				return err
			}
			ok("Removed: %s", result.Book.Title)
		}
	}
}
