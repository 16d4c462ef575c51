package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/store"
)

func newRemoveCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a book from your reading list",
		Long: `Remove a book permanently. This deletes the record, including notes
and cover art, and cannot be undone.

Examples:
  readlog remove 3f2a
  readlog remove 3f2a --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBook(args[0])
			if err != nil {
				return err
			}

			if !skipConfirm {
				if !confirm(fmt.Sprintf("Remove %q by %s?", b.Title, b.Author)) {
					warn("Cancelled.")
					return nil
				}
			}

			if err := st.Remove(b.ID); err != nil {
				// Already gone, the list was stale. Nothing to do.
				if errors.Is(err, store.ErrNotFound) {
					warn("Already removed: %s", b.Title)
					return nil
				}
				return err
			}

			ok("Removed: %s", b.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
