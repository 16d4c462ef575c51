package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/backup"
)

func newImportCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace your library with a backup file",
		Long: `Import a backup document, replacing the entire current library.

This is destructive: every current book is removed and the backup's books
take their place, in one atomic step. A malformed file aborts the import
with the current library untouched.

Examples:
  readlog import reading-list-backup-2026-08-30.json
  readlog import backup.json --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			books, err := backup.Decode(data)
			if err != nil {
				return err
			}

			current, err := st.List()
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			if !skipConfirm {
				prompt := fmt.Sprintf("Import %d book(s), replacing your %d current book(s)? This cannot be undone.",
					len(books), len(current))
				if !confirm(prompt) {
					warn("Cancelled.")
					return nil
				}
			}

			if err := st.BulkReplace(books); err != nil {
				return fmt.Errorf("importing: %w", err)
			}

			ok("Imported %d book(s)", len(books))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
