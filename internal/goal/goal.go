// Package goal turns a yearly target and a catalog snapshot into pacing
// numbers. All math is pure given a clock, so tests can pin "now".
package goal

import (
	"math"
	"time"

	"github.com/blackwell-systems/readlog/internal/book"
	"github.com/blackwell-systems/readlog/internal/stats"
)

// Report is the progress against a yearly reading target.
type Report struct {
	Year          int     `json:"year"`
	Target        int     `json:"target"`
	Completed     int     `json:"completed"`
	Percent       int     `json:"percent"`
	Remaining     int     `json:"remaining"`
	DaysRemaining int     `json:"daysRemaining"`
	BooksPerMonth float64 `json:"booksPerMonth"`
}

// Progress computes the report for the year containing now.
// Percent is 0 when target <= 0; pacing is 0 once nothing remains or the
// year has run out, never negative or infinite.
func Progress(books []book.Book, target int, now time.Time) Report {
	year := now.Year()
	completed := stats.CompletedInYear(books, year)

	r := Report{
		Year:      year,
		Target:    target,
		Completed: completed,
	}
	if target > 0 {
		r.Percent = int(math.Round(float64(completed) / float64(target) * 100))
		r.Remaining = target - completed
		if r.Remaining < 0 {
			r.Remaining = 0
		}
	}

	lastDay := time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())
	days := int(lastDay.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	r.DaysRemaining = days

	if r.Remaining > 0 && days > 0 {
		r.BooksPerMonth = float64(r.Remaining) / (float64(days) / 30)
	}
	return r
}

// MonthPlan is one row of the twelve-month breakdown.
type MonthPlan struct {
	Month     time.Month `json:"month"`
	Completed int        `json:"completed"`
	Target    int        `json:"target"`
}

// MonthlyPlan spreads the yearly target evenly across the twelve months and
// pairs each with the books actually completed in it.
func MonthlyPlan(books []book.Book, target, year int) []MonthPlan {
	perMonth := 0
	if target > 0 {
		perMonth = int(math.Round(float64(target) / 12))
	}
	plan := make([]MonthPlan, 12)
	for m := 1; m <= 12; m++ {
		plan[m-1] = MonthPlan{
			Month:     time.Month(m),
			Completed: stats.CompletedInMonth(books, year, m),
			Target:    perMonth,
		}
	}
	return plan
}
