package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/book"
)

func newListCmd() *cobra.Command {
	var (
		status  string
		genre   string
		search  string
		sortBy  string
		desc    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the books in your reading list",
		Long: `List your books, with optional filtering and sorting.

Examples:
  readlog list                      Everything, newest additions first
  readlog list --status Reading     Only books in progress
  readlog list --genre sf --sort rating --desc
  readlog list --search ursula      Match on title, author, or genre
  readlog list --json               Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := st.List()
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			f := book.Filter{Genre: genre, Search: search}
			if status != "" {
				f.Status = book.Status(status)
				if !f.Status.Valid() {
					return fmt.Errorf("invalid status %q", status)
				}
			}
			books = f.Apply(books)

			field := sortBy
			if field == "" {
				field = cfg.EffectiveSort()
				// Default listing shows newest additions first.
				if !cmd.Flags().Changed("desc") && field == book.SortDateAdded {
					desc = true
				}
			}
			book.SortBooks(books, field, desc)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if books == nil {
					books = []book.Book{}
				}
				return enc.Encode(books)
			}

			if len(books) == 0 {
				warn("No books found. Add one with: readlog add \"Title\" --author \"Name\"")
				return nil
			}

			for _, b := range books {
				line := fmt.Sprintf("%-8s  %-11s  %s — %s",
					shortID(b.ID), statusColored(b.Status), b.Title, color.WhiteString(b.Author))
				if b.Genre != "" {
					line += "  " + color.CyanString("["+b.Genre+"]")
				}
				if b.Rating > 0 {
					line += "  " + color.YellowString(stars(b.Rating))
				}
				fmt.Println(line)
			}
			fmt.Println()
			fmt.Printf("%d book(s)\n", len(books))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&genre, "genre", "", "Filter by genre")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on title, author, or genre")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by: title, author, added, rating")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
