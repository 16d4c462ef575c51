package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/backup"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export your library to a backup file",
		Long: `Write the whole library to a JSON backup document. The file can be
imported on any device running readlog.

Without an argument the file is named after today's date, e.g.
reading-list-backup-2026-08-30.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := st.List()
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			now := time.Now()
			path := backup.DefaultFilename(now)
			if len(args) == 1 {
				path = args[0]
			}

			doc := backup.Export(books, now)
			data, err := doc.Marshal()
			if err != nil {
				return fmt.Errorf("encoding backup: %w", err)
			}

			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}

			ok("Exported %d book(s) to %s", len(books), path)
			return nil
		},
	}
	return cmd
}
