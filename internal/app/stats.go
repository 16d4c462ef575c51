package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/readlog/internal/book"
	"github.com/blackwell-systems/readlog/internal/stats"
)

type statsOutput struct {
	Summary        stats.Summary      `json:"summary"`
	AverageRating  float64            `json:"averageRating"`
	TotalPages     int                `json:"totalPages"`
	AveragePages   int                `json:"averagePages"`
	PagesRead      int                `json:"pagesRead"`
	CompletionRate int                `json:"completionRate"`
	Monthly        map[string]int     `json:"monthly"`
	Genres         []stats.GenreCount `json:"genres"`
	Recent         []book.Book        `json:"recent"`
}

func newStatsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics",
		Long: `Show aggregate statistics over your whole library: status counts,
ratings, pages, monthly completions, genre distribution, and the most
recently finished books.

All numbers are derived fresh from the catalog on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := st.List()
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}

			out := statsOutput{
				Summary:        stats.Summarize(books),
				AverageRating:  stats.AverageRating(books),
				TotalPages:     stats.TotalPages(books),
				AveragePages:   stats.AveragePages(books),
				PagesRead:      stats.PagesRead(books),
				CompletionRate: stats.CompletionRate(books),
				Monthly:        stats.MonthlyCompletions(books),
				Genres:         stats.GenreCounts(books),
				Recent:         stats.RecentCompletions(books, cfg.EffectiveRecentLimit()),
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			printStatsText(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printStatsText(out statsOutput) {
	header("Library")
	fmt.Printf("  to read:    %d\n", out.Summary.ToRead)
	fmt.Printf("  reading:    %d\n", out.Summary.Reading)
	fmt.Printf("  completed:  %d\n", out.Summary.Completed)
	fmt.Printf("  total:      %d  (%d%% completed)\n", out.Summary.Total, out.CompletionRate)
	fmt.Println()

	header("Pages & ratings")
	if out.AverageRating > 0 {
		fmt.Printf("  average rating:  %.1f\n", out.AverageRating)
	} else {
		fmt.Printf("  average rating:  no rated books\n")
	}
	fmt.Printf("  total pages:     %d\n", out.TotalPages)
	fmt.Printf("  average pages:   %d\n", out.AveragePages)
	fmt.Printf("  pages read:      %d\n", out.PagesRead)
	fmt.Println()

	if len(out.Monthly) > 0 {
		header("Completions by month")
		max := 0
		for _, n := range out.Monthly {
			if n > max {
				max = n
			}
		}
		months := stats.SortedMonths(out.Monthly)
		if len(months) > 6 {
			months = months[:6]
		}
		for _, m := range months {
			n := out.Monthly[m]
			label := monthLabel(m)
			bar := strings.Repeat("█", barWidth(n, max))
			fmt.Printf("  %-14s %-20s %d\n", label, color.GreenString(bar), n)
		}
		fmt.Println()
	}

	if len(out.Genres) > 0 {
		header("Genres")
		genres := out.Genres
		if len(genres) > 8 {
			genres = genres[:8]
		}
		for _, g := range genres {
			fmt.Printf("  %-20s %d\n", color.CyanString(g.Genre), g.Count)
		}
		fmt.Println()
	}

	if len(out.Recent) > 0 {
		header("Recently finished")
		for _, b := range out.Recent {
			line := fmt.Sprintf("  %s — %s", b.Title, b.Author)
			if b.Rating > 0 {
				line += "  " + color.YellowString(stars(b.Rating))
			}
			line += "  " + color.WhiteString(b.CompletedDate.Local().Format("2006-01-02"))
			fmt.Println(line)
		}
	}
}

// barWidth scales a count to at most 20 blocks. Any nonzero count keeps
// at least one block so small months don't render an empty bar.
func barWidth(n, max int) int {
	w := n * 20 / max
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}

// monthLabel turns a "YYYY-MM" bucket key into "Jan 2006".
func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
