package widget

import (
	"fmt"
	"time"
)

// gridCells is always 6 rows of 7 days so the layout never jumps between
// months of different lengths.
const gridCells = 42

// Cell is one day cell in the rendered month grid. Cells outside the
// rendered month (leading/trailing filler) are never interactive.
type Cell struct {
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, in-month cells only
	InMonth  bool   `json:"inMonth"`
	Disabled bool   `json:"disabled"`
	Today    bool   `json:"today"`
	Selected bool   `json:"selected"`
}

// MonthGrid renders the 42-cell grid for month/year. Past dates (date-only
// comparison against today) are disabled; the cell matching selectedDate is
// tagged regardless of which month is rendered.
func MonthGrid(year int, month time.Month, today time.Time, selectedDate string) []Cell {
	firstDay := int(time.Date(year, month, 1, 0, 0, 0, 0, today.Location()).Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location()).Day()
	daysInPrevMonth := time.Date(year, month, 0, 0, 0, 0, 0, today.Location()).Day()

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	isCurrentMonth := month == today.Month() && year == today.Year()

	cells := make([]Cell, 0, gridCells)

	for i := firstDay - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: daysInPrevMonth - i, Disabled: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		dateStr := DateString(year, month, day)
		dateObj := time.Date(year, month, day, 0, 0, 0, 0, today.Location())

		cells = append(cells, Cell{
			Day:      day,
			Date:     dateStr,
			InMonth:  true,
			Disabled: dateObj.Before(todayDate),
			Today:    isCurrentMonth && day == today.Day(),
			Selected: selectedDate != "" && dateStr == selectedDate,
		})
	}

	for day := 1; len(cells) < gridCells; day++ {
		cells = append(cells, Cell{Day: day, Disabled: true})
	}

	return cells
}

// DateString formats a calendar date the way the booking API expects it.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthLabel is the grid heading, e.g. "March 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}
