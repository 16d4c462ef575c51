package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/goal"
)

func newGoalCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "goal [target]",
		Short: "Show or set the yearly reading goal",
		Long: `Without arguments, shows progress against this year's reading goal.
With a number, sets the goal.

Examples:
  readlog goal          Progress report
  readlog goal 24       Aim for 24 books this year`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("target must be a number: %q", args[0])
				}
				if n <= 0 {
					// A preference, not a hard input: ignore, don't fail.
					warn("Goal must be positive, keeping the current target.")
					return nil
				}
				if err := st.SetGoal(n); err != nil {
					return fmt.Errorf("saving goal: %w", err)
				}
				ok("Yearly goal set to %d books", n)
				return nil
			}

			books, err := st.List()
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}
			target, err := st.Goal()
			if err != nil {
				return fmt.Errorf("loading goal: %w", err)
			}
			if target == 0 {
				target = cfg.EffectiveGoalTarget()
			}

			r := goal.Progress(books, target, time.Now())

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}

			header("%d Reading Goal", r.Year)
			fmt.Printf("  %d of %d books completed (%d%%)\n", r.Completed, r.Target, r.Percent)
			fmt.Printf("  remaining:       %d\n", r.Remaining)
			fmt.Printf("  days remaining:  %d\n", r.DaysRemaining)
			if r.BooksPerMonth > 0 {
				fmt.Printf("  pace needed:     %.1f books/month\n", r.BooksPerMonth)
			}
			fmt.Println()

			if r.Target > 0 && r.Completed >= r.Target {
				fmt.Println(color.GreenString("  Goal reached, congratulations!"))
				fmt.Println()
			}

			// Month-by-month breakdown for the year.
			plan := goal.MonthlyPlan(books, target, r.Year)
			thisMonth := time.Now().Month()
			for _, p := range plan {
				marker := " "
				if p.Month == thisMonth {
					marker = color.YellowString("›")
				}
				line := fmt.Sprintf("%s %-4s %d of %d", marker, p.Month.String()[:3], p.Completed, p.Target)
				if p.Target > 0 && p.Completed >= p.Target && p.Completed > 0 {
					line += " " + color.GreenString("✓")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
