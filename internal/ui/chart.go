package ui

import (
	"fmt"
	"strings"

	"github.com/aokumura/commitlens/internal/domain"
)

const minBarWidth = 10

// barWidths scales the twelve buckets to bar lengths between 0 and
// maxWidth cells. Non-zero buckets always get at least one cell so a
// month with a single commit is still visible.
func barWidths(activity *domain.YearActivity, maxWidth int) [12]int {
	if maxWidth < minBarWidth {
		maxWidth = minBarWidth
	}
	_, peak := activity.PeakMonth()
	var widths [12]int
	if peak == 0 {
		return widths
	}
	for i, m := range activity.Months {
		if m.Commits == 0 {
			continue
		}
		w := m.Commits * maxWidth / peak
		if w < 1 {
			w = 1
		}
		widths[i] = w
	}
	return widths
}

// renderChart draws the 12-row monthly bar chart with a summary footer.
// An all-zero year renders a "no commits" notice instead of bars.
func renderChart(activity *domain.YearActivity, width int) string {
	var b strings.Builder

	b.WriteString(yearStyle.Render(fmt.Sprintf("Commits in %d", activity.Year)))
	b.WriteString("\n\n")

	if !activity.HasCommits() {
		b.WriteString(subtitleStyle.Render("No commits found for this year."))
		return b.String()
	}

	// Label (3) + spaces + count column; the rest is bar space.
	barSpace := width - 12
	widths := barWidths(activity, barSpace)
	peakMonth, _ := activity.PeakMonth()

	for i, m := range activity.Months {
		label := monthLabelStyle.Render(m.Month.String()[:3])
		bar := strings.Repeat("█", widths[i])
		if m.Month == peakMonth {
			bar = peakBarStyle.Render(bar)
		} else {
			bar = barStyle.Render(bar)
		}
		count := countStyle.Render(fmt.Sprintf("%d", m.Commits))
		b.WriteString(fmt.Sprintf("%s %s %s\n", label, bar, count))
	}

	s := activity.Summarize()
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"total %d · peak %s (%d) · mean %.1f/mo · median %.1f/mo",
		s.Total, s.PeakMonth, s.PeakCommits, s.MeanPerMo, s.MedianPerMo,
	)))
	return b.String()
}
