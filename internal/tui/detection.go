package tui

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/util"
)

// ShouldUseTUI reports whether a command should open the interactive view:
// stdout must be a terminal, and neither --no-interactive nor --json may
// be set. --json signals scripting, which never gets a TUI.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	if off, _ := cmd.Flags().GetBool("no-interactive"); off {
		return false
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return false
	}
	return true
}
