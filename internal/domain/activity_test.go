package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitWindow(t *testing.T) {
	now := time.Date(2026, time.August, 25, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		year          int
		expectedSince time.Time
		expectedUntil time.Time
	}{
		{
			name:          "past year - full calendar window",
			year:          2024,
			expectedSince: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedUntil: time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "current year - upper bound clamped to now",
			year:          2026,
			expectedSince: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedUntil: now,
		},
		{
			name:          "future year - whole window collapses onto now",
			year:          2027,
			expectedSince: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedUntil: now,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			since, until := CommitWindow(tc.year, now)
			assert.Equal(t, tc.expectedSince, since)
			assert.Equal(t, tc.expectedUntil, until)
			assert.False(t, until.After(now), "until must never exceed now")
		})
	}
}

func TestYearOptions(t *testing.T) {
	now := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		createdAt time.Time
		expected  []int
	}{
		{
			name:      "multi-year account, newest first",
			createdAt: time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC),
			expected:  []int{2026, 2025, 2024, 2023},
		},
		{
			name:      "account created this year",
			createdAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected:  []int{2026},
		},
		{
			name:      "creation timestamp in the future still yields the current year",
			createdAt: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected:  []int{2026},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			years := YearOptions(tc.createdAt, now)
			assert.Equal(t, tc.expected, years)
			for _, y := range years {
				assert.GreaterOrEqual(t, y, tc.createdAt.Year(), "no year before account creation unless clamped")
				assert.LessOrEqual(t, y, now.Year(), "no year after the current one")
			}
		})
	}
}

func TestYearActivity_Buckets(t *testing.T) {
	a := NewYearActivity(2025)

	assert.False(t, a.HasCommits())
	assert.Equal(t, 0, a.Total())
	month, commits := a.PeakMonth()
	assert.Equal(t, time.January, month)
	assert.Equal(t, 0, commits)
	for i, m := range a.Months {
		assert.Equal(t, time.Month(i+1), m.Month)
		assert.Zero(t, m.Commits)
	}

	a.Add(time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC))
	a.Add(time.Date(2025, time.March, 28, 9, 0, 0, 0, time.UTC))
	a.Add(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC))

	assert.True(t, a.HasCommits())
	assert.Equal(t, 3, a.Total())
	assert.Equal(t, 2, a.Months[2].Commits)
	assert.Equal(t, 1, a.Months[11].Commits)

	month, commits = a.PeakMonth()
	assert.Equal(t, time.March, month)
	assert.Equal(t, 2, commits)
}

func TestYearActivity_Summarize(t *testing.T) {
	a := NewYearActivity(2025)
	for i := 0; i < 6; i++ {
		a.Add(time.Date(2025, time.July, 1+i, 0, 0, 0, 0, time.UTC))
	}
	for i := 0; i < 6; i++ {
		a.Add(time.Date(2025, time.August, 1+i, 0, 0, 0, 0, time.UTC))
	}

	s := a.Summarize()
	assert.Equal(t, 12, s.Total)
	assert.Equal(t, "July", s.PeakMonth)
	assert.Equal(t, 6, s.PeakCommits)
	assert.InDelta(t, 1.0, s.MeanPerMo, 1e-9)
	assert.InDelta(t, 0.0, s.MedianPerMo, 1e-9)
	assert.Equal(t, a.Total(), s.Total, "displayed total equals the bucket sum")
}
