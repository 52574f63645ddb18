package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthGridAlways42Cells(t *testing.T) {
	today := date(2025, time.March, 15)

	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.March, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		cells := MonthGrid(tt.year, tt.month, today, "")
		require.Len(t, cells, 42, "%s %d", tt.month, tt.year)

		inMonth := 0
		for _, c := range cells {
			if c.InMonth {
				inMonth++
			}
		}
		assert.Equal(t, tt.days, inMonth, "%s %d", tt.month, tt.year)
	}
}

func TestMonthGridFillerCells(t *testing.T) {
	// March 2025 starts on a Saturday: 6 leading filler cells, then 31
	// days, then 5 trailing fillers.
	cells := MonthGrid(2025, time.March, date(2025, time.March, 15), "")

	for i := 0; i < 6; i++ {
		assert.False(t, cells[i].InMonth, "cell %d", i)
		assert.True(t, cells[i].Disabled, "cell %d", i)
	}
	assert.Equal(t, 23, cells[0].Day) // trailing days of February
	assert.Equal(t, 28, cells[5].Day)

	assert.True(t, cells[6].InMonth)
	assert.Equal(t, 1, cells[6].Day)
	assert.Equal(t, "2025-03-01", cells[6].Date)

	assert.Equal(t, 31, cells[36].Day)
	for i := 37; i < 42; i++ {
		assert.False(t, cells[i].InMonth, "cell %d", i)
	}
	assert.Equal(t, 1, cells[37].Day) // leading days of April
	assert.Equal(t, 5, cells[41].Day)
}

func TestMonthGridDisablesPastDates(t *testing.T) {
	today := date(2025, time.March, 15)
	cells := MonthGrid(2025, time.March, today, "")

	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		if c.Day < 15 {
			assert.True(t, c.Disabled, "day %d should be disabled", c.Day)
		} else {
			assert.False(t, c.Disabled, "day %d should be selectable", c.Day)
		}
	}
}

func TestMonthGridTodayTag(t *testing.T) {
	today := date(2025, time.March, 15)

	cells := MonthGrid(2025, time.March, today, "")
	var tagged []int
	for _, c := range cells {
		if c.Today {
			tagged = append(tagged, c.Day)
		}
	}
	assert.Equal(t, []int{15}, tagged)

	// A different rendered month never tags a today cell.
	for _, c := range MonthGrid(2025, time.April, today, "") {
		assert.False(t, c.Today)
	}
}

func TestMonthGridSelectedTag(t *testing.T) {
	today := date(2025, time.March, 1)

	cells := MonthGrid(2025, time.March, today, "2025-03-10")
	var selected []string
	for _, c := range cells {
		if c.Selected {
			selected = append(selected, c.Date)
		}
	}
	assert.Equal(t, []string{"2025-03-10"}, selected)

	// Navigating away drops the highlight; coming back restores it.
	for _, c := range MonthGrid(2025, time.April, today, "2025-03-10") {
		assert.False(t, c.Selected)
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "March 2025", MonthLabel(2025, time.March))
}
