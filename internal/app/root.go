package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/config"
	"github.com/blackwell-systems/readlog/internal/store"
	"github.com/blackwell-systems/readlog/internal/tui"
	"github.com/blackwell-systems/readlog/internal/util"
)

var (
	cfg *config.Config
	st  *store.Store

	flagNoColor       bool
	flagNoInteractive bool
	flagDB            string
)

var rootCmd = &cobra.Command{
	Use:   "readlog",
	Short: "Track your personal reading list from the terminal",
	Long: `readlog catalogs the books you read: status, progress, notes, ratings,
cover art, yearly goals, and statistics.

Everything lives in one local database file on this device. No account,
no server, no sync.

Run 'readlog' with no arguments in a terminal to browse your library.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runBrowse("")
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	if st != nil {
		st.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file path (default: ~/.local/share/readlog/readlog.db)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// version and help never touch the database.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		dbPath := cfg.Database.Path
		if flagDB != "" {
			dbPath = config.ExpandHome(flagDB)
		}

		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening library at %s: %w", dbPath, err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newEditCmd(),
		newStartCmd(),
		newFinishCmd(),
		newProgressCmd(),
		newRemoveCmd(),
		newStatsCmd(),
		newGoalCmd(),
		newExportCmd(),
		newImportCmd(),
		newClearCmd(),
		newBrowseCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
