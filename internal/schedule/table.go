package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Slot is one bookable time on a given weekday. Time is 24h "HH:MM" as
// submitted by the widget; Display is what the customer sees.
type Slot struct {
	Time    string `json:"time"`
	Display string `json:"display"`
}

// Day is a weekday's worth of bookable slots. An empty Slots list means
// the shop is closed that day.
type Day struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Table maps weekday index 0-6 (0=Sunday) to that day's slots. It is built
// once at startup and never mutated afterwards.
type Table struct {
	days [7]Day
}

// New returns the built-in schedule, matching the hours published on the
// booking widget.
func New() *Table {
	return &Table{days: defaultDays}
}

// FromDays builds a table from explicit weekday overrides. Weekdays not
// in the map keep the built-in schedule.
func FromDays(days map[time.Weekday]Day) *Table {
	t := New()
	for wd, day := range days {
		if day.Name == "" {
			day.Name = t.days[int(wd)].Name
		}
		t.days[int(wd)] = day
	}
	return t
}

// Load reads a schedule override from a JSON file keyed "0".."6". Days
// missing from the file fall back to the built-in schedule.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var override map[string]Day
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	t := New()
	for i := 0; i < 7; i++ {
		if day, ok := override[fmt.Sprintf("%d", i)]; ok {
			if day.Name == "" {
				day.Name = t.days[i].Name
			}
			t.days[i] = day
		}
	}
	return t, nil
}

// Day returns the schedule for a weekday.
func (t *Table) Day(weekday time.Weekday) Day {
	return t.days[int(weekday)]
}

// SlotsFor returns the ordered slots for a weekday, or nil on a closed day.
func (t *Table) SlotsFor(weekday time.Weekday) []Slot {
	return t.days[int(weekday)].Slots
}

// Closed reports whether the shop has no bookable slots on a weekday.
func (t *Table) Closed(weekday time.Weekday) bool {
	return len(t.days[int(weekday)].Slots) == 0
}

// Bookable reports whether hhmm is one of the configured slots for the
// weekday that date falls on. date must be YYYY-MM-DD.
func (t *Table) Bookable(date, hhmm string) (bool, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("invalid service date %q: %w", date, err)
	}
	for _, slot := range t.days[int(d.Weekday())].Slots {
		if slot.Time == hhmm {
			return true, nil
		}
	}
	return false, nil
}

// Days returns a copy of the full table, keyed by weekday index, for the
// /api/schedule endpoint.
func (t *Table) Days() map[int]Day {
	out := make(map[int]Day, 7)
	for i, d := range t.days {
		slots := make([]Slot, len(d.Slots))
		copy(slots, d.Slots)
		out[i] = Day{Name: d.Name, Slots: slots}
	}
	return out
}

var defaultDays = [7]Day{
	{
		Name: "Sunday",
		Slots: []Slot{
			{Time: "07:00", Display: "7:00 AM"},
			{Time: "07:30", Display: "7:30 AM"},
			{Time: "08:00", Display: "8:00 AM"},
			{Time: "08:30", Display: "8:30 AM"},
			{Time: "09:00", Display: "9:00 AM"},
			{Time: "09:30", Display: "9:30 AM"},
			{Time: "10:00", Display: "10:00 AM"},
			{Time: "10:30", Display: "10:30 AM"},
			{Time: "11:00", Display: "11:00 AM"},
			{Time: "11:30", Display: "11:30 AM"},
			{Time: "12:00", Display: "12:00 PM"},
			{Time: "12:30", Display: "12:30 PM"},
			{Time: "13:00", Display: "1:00 PM"},
			{Time: "13:30", Display: "1:30 PM"},
			{Time: "14:00", Display: "2:00 PM"},
			{Time: "14:30", Display: "2:30 PM"},
			{Time: "15:00", Display: "3:00 PM"},
			{Time: "15:30", Display: "3:30 PM"},
			{Time: "16:00", Display: "4:00 PM"},
			{Time: "16:30", Display: "4:30 PM"},
			{Time: "17:00", Display: "5:00 PM"},
			{Time: "17:30", Display: "5:30 PM"},
			{Time: "18:00", Display: "6:00 PM"},
			{Time: "18:30", Display: "6:30 PM"},
		},
	},
	{
		Name: "Monday",
		Slots: []Slot{
			{Time: "06:00", Display: "6:00 PM"},
			{Time: "06:30", Display: "6:30 PM"},
			{Time: "07:00", Display: "7:00 PM"},
			{Time: "07:30", Display: "7:30 PM"},
		},
	},
	{
		Name: "Tuesday",
		Slots: []Slot{
			{Time: "04:30", Display: "4:30 PM"},
			{Time: "05:00", Display: "5:00 PM"},
			{Time: "06:00", Display: "6:00 PM"},
			{Time: "06:30", Display: "6:30 PM"},
			{Time: "07:00", Display: "7:00 PM"},
			{Time: "07:30", Display: "7:30 PM"},
		},
	},
	{
		Name: "Wednesday",
		Slots: []Slot{
			{Time: "04:30", Display: "4:30 PM"},
			{Time: "05:00", Display: "5:00 PM"},
			{Time: "06:00", Display: "6:00 PM"},
			{Time: "06:30", Display: "6:30 PM"},
			{Time: "07:00", Display: "7:00 PM"},
			{Time: "07:30", Display: "7:30 PM"},
		},
	},
	{
		Name: "Thursday",
		Slots: []Slot{
			{Time: "09:00", Display: "9:00 AM"},
			{Time: "09:30", Display: "9:30 AM"},
			{Time: "10:00", Display: "10:00 AM"},
			{Time: "10:30", Display: "10:30 AM"},
			{Time: "11:00", Display: "11:00 AM"},
			{Time: "11:30", Display: "11:30 AM"},
			{Time: "12:00", Display: "12:00 PM"},
			{Time: "12:30", Display: "12:30 PM"},
			{Time: "18:00", Display: "6:00 PM"},
			{Time: "18:30", Display: "6:30 PM"},
		},
	},
	{
		Name: "Friday",
		Slots: []Slot{
			{Time: "06:00", Display: "6:00 PM"},
			{Time: "06:30", Display: "6:30 PM"},
			{Time: "07:00", Display: "7:00 PM"},
			{Time: "07:30", Display: "7:30 PM"},
		},
	},
	{
		Name: "Saturday",
		Slots: []Slot{
			{Time: "07:00", Display: "7:00 AM"},
			{Time: "07:30", Display: "7:30 AM"},
			{Time: "08:00", Display: "8:00 AM"},
			{Time: "08:30", Display: "8:30 AM"},
			{Time: "09:00", Display: "9:00 AM"},
			{Time: "09:30", Display: "9:30 AM"},
			{Time: "10:00", Display: "10:00 AM"},
			{Time: "10:30", Display: "10:30 AM"},
			{Time: "11:00", Display: "11:00 AM"},
			{Time: "11:30", Display: "11:30 AM"},
			{Time: "12:00", Display: "12:00 PM"},
			{Time: "12:30", Display: "12:30 PM"},
			{Time: "13:00", Display: "1:00 PM"},
			{Time: "13:30", Display: "1:30 PM"},
			{Time: "14:00", Display: "2:00 PM"},
			{Time: "14:30", Display: "2:30 PM"},
			{Time: "15:00", Display: "3:00 PM"},
			{Time: "15:30", Display: "3:30 PM"},
			{Time: "16:00", Display: "4:00 PM"},
			{Time: "16:30", Display: "4:30 PM"},
			{Time: "17:00", Display: "5:00 PM"},
			{Time: "17:30", Display: "5:30 PM"},
			{Time: "18:00", Display: "6:00 PM"},
			{Time: "18:30", Display: "6:30 PM"},
		},
	},
}
