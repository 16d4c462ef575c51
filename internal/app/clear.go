package app

import (
	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data",
		Long: `Delete every book, the yearly goal, and all other stored data.

This wipes the whole library and cannot be undone. Consider running
'readlog export' first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !skipConfirm {
				if !confirm("This permanently deletes ALL your books and data. Continue?") {
					warn("Cancelled.")
					return nil
				}
				if !confirm("Are you absolutely sure? Everything will be lost forever.") {
					warn("Cancelled.")
					return nil
				}
			}

			if err := st.ClearAll(); err != nil {
				return err
			}

			ok("All data cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")
	return cmd
}
