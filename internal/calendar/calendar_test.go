package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEnumerate(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		expected []string
		err      error
	}{
		{
			name:     "Single night",
			start:    "2024-01-01",
			end:      "2024-01-02",
			expected: []string{"2024-01-01"},
		},
		{
			name:     "Multi night excludes checkout day",
			start:    "2024-01-01",
			end:      "2024-01-04",
			expected: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name:     "Crosses month boundary",
			start:    "2024-02-28",
			end:      "2024-03-01",
			expected: []string{"2024-02-28", "2024-02-29"}, // 2024 is a leap year
		},
		{
			name:  "Empty range rejected",
			start: "2024-01-02",
			end:   "2024-01-02",
			err:   ErrEmptyRange,
		},
		{
			name:  "Inverted range rejected",
			start: "2024-01-05",
			end:   "2024-01-02",
			err:   ErrEmptyRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := Enumerate(date(tc.start), date(tc.end))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			got := make([]string, len(days))
			for i, d := range days {
				got[i] = Format(d)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEnumerateIsRestartable(t *testing.T) {
	first, err := Enumerate(date("2024-01-01"), date("2024-01-10"))
	require.NoError(t, err)
	second, err := Enumerate(date("2024-01-01"), date("2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 1, DayCount(date("2024-01-01"), date("2024-01-02")))
	assert.Equal(t, 3, DayCount(date("2024-01-01"), date("2024-01-04")))
	assert.Equal(t, 0, DayCount(date("2024-01-02"), date("2024-01-02")))
	assert.Equal(t, 0, DayCount(date("2024-01-05"), date("2024-01-02")))
}

func TestDayNormalizesToUTCMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	local := time.Date(2024, 6, 15, 23, 30, 0, 0, loc)
	d := Day(local)
	assert.Equal(t, "2024-06-15", Format(d))
	assert.Equal(t, time.UTC, d.Location())
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		expected                   bool
	}{
		{"Identical ranges", "2024-01-01", "2024-01-03", "2024-01-01", "2024-01-03", true},
		{"Partial overlap", "2024-01-01", "2024-01-03", "2024-01-02", "2024-01-04", true},
		{"Back to back turnover day", "2024-01-01", "2024-01-03", "2024-01-03", "2024-01-05", false},
		{"Disjoint", "2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", false},
		{"Containment", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-04", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(date(tc.aStart), date(tc.aEnd), date(tc.bStart), date(tc.bEnd))
			assert.Equal(t, tc.expected, got)
		})
	}
}
