package domain

import (
	"time"

	"github.com/montanaflynn/stats"
)

// MonthlyCount is one of the twelve per-month commit counters of a
// target year. Month is the calendar month the bucket represents.
type MonthlyCount struct {
	Month   time.Month `json:"month"`
	Commits int        `json:"commits"`
}

// YearActivity holds a user's commit activity for one calendar year,
// bucketed by month. Months is always a full 12-element sequence,
// index 0 = January, regardless of how much data was found.
type YearActivity struct {
	Year   int              `json:"year"`
	Months [12]MonthlyCount `json:"months"`
}

// NewYearActivity returns an all-zero activity for the given year with
// every bucket labeled by its calendar month.
func NewYearActivity(year int) *YearActivity {
	a := &YearActivity{Year: year}
	for i := range a.Months {
		a.Months[i].Month = time.Month(i + 1)
	}
	return a
}

// Add increments the bucket for the month of the given authored date.
// The date's year is not validated against the target year; commits the
// API returned for the window are counted as returned.
func (a *YearActivity) Add(authoredAt time.Time) {
	a.Months[int(authoredAt.Month())-1].Commits++
}

// Total returns the sum of all twelve buckets.
func (a *YearActivity) Total() int {
	var total int
	for _, m := range a.Months {
		total += m.Commits
	}
	return total
}

// HasCommits reports whether any bucket is non-zero. Callers use it to
// decide between rendering a chart and a "no commits" notice.
func (a *YearActivity) HasCommits() bool {
	for _, m := range a.Months {
		if m.Commits > 0 {
			return true
		}
	}
	return false
}

// PeakMonth returns the month with the highest count and that count.
// Ties resolve to the earliest month; an all-zero year reports January
// with zero commits.
func (a *YearActivity) PeakMonth() (time.Month, int) {
	peak := a.Months[0]
	for _, m := range a.Months[1:] {
		if m.Commits > peak.Commits {
			peak = m
		}
	}
	return peak.Month, peak.Commits
}

// Summary holds derived per-month statistics for display alongside the
// chart.
type Summary struct {
	Total       int     `json:"total"`
	PeakMonth   string  `json:"peak_month"`
	PeakCommits int     `json:"peak_commits"`
	MeanPerMo   float64 `json:"mean_per_month"`
	MedianPerMo float64 `json:"median_per_month"`
}

// Summarize computes the display summary from the twelve buckets.
func (a *YearActivity) Summarize() Summary {
	values := make([]float64, len(a.Months))
	for i, m := range a.Months {
		values[i] = float64(m.Commits)
	}
	// A fixed 12-element input never errors.
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	month, commits := a.PeakMonth()
	return Summary{
		Total:       a.Total(),
		PeakMonth:   month.String(),
		PeakCommits: commits,
		MeanPerMo:   mean,
		MedianPerMo: median,
	}
}

// CommitWindow returns the inclusive date window for a target year,
// [Jan 1 00:00:00, Dec 31 23:59:59] UTC. When the upper bound lies in
// the future relative to now it is clamped to now, so the window never
// asks for commits that cannot exist yet.
func CommitWindow(year int, now time.Time) (since, until time.Time) {
	since = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	if until.After(now) {
		until = now
	}
	return since, until
}

// YearOptions returns the years selectable for a user, newest first:
// every year from the account-creation year through the current year
// and nothing outside that range.
func YearOptions(createdAt, now time.Time) []int {
	first := createdAt.Year()
	last := now.Year()
	if first > last {
		first = last
	}
	years := make([]int, 0, last-first+1)
	for y := last; y >= first; y-- {
		years = append(years, y)
	}
	return years
}
