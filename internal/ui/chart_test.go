package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aokumura/commitlens/internal/domain"
)

func TestBarWidths(t *testing.T) {
	a := domain.NewYearActivity(2024)
	for i := 0; i < 40; i++ {
		a.Add(time.Date(2024, time.June, 1, i%24, 0, 0, 0, time.UTC))
	}
	for i := 0; i < 10; i++ {
		a.Add(time.Date(2024, time.September, 1, i, 0, 0, 0, time.UTC))
	}
	a.Add(time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC))

	widths := barWidths(a, 40)

	assert.Equal(t, 40, widths[5], "peak month fills the full bar space")
	assert.Equal(t, 10, widths[8])
	assert.Equal(t, 1, widths[11], "a single commit still draws a visible bar")
	assert.Zero(t, widths[0], "empty months draw nothing")
}

func TestBarWidths_AllZero(t *testing.T) {
	widths := barWidths(domain.NewYearActivity(2024), 40)
	for _, w := range widths {
		assert.Zero(t, w)
	}
}

func TestRenderChart(t *testing.T) {
	t.Run("no commits notice", func(t *testing.T) {
		out := renderChart(domain.NewYearActivity(2023), 60)
		assert.Contains(t, out, "Commits in 2023")
		assert.Contains(t, out, "No commits found")
	})

	t.Run("chart with summary footer", func(t *testing.T) {
		a := domain.NewYearActivity(2023)
		a.Add(time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC))
		a.Add(time.Date(2023, time.February, 11, 0, 0, 0, 0, time.UTC))
		a.Add(time.Date(2023, time.October, 3, 0, 0, 0, 0, time.UTC))

		out := renderChart(a, 60)
		assert.Contains(t, out, "Feb")
		assert.Contains(t, out, "Oct")
		assert.Contains(t, out, "total 3")
		assert.Contains(t, out, "peak February (2)")
	})
}
