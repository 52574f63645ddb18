package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
)

var (
	ErrNoSelection    = errors.New("no date and time selected")
	ErrPastDate       = errors.New("date is in the past")
	ErrPastDateTime   = errors.New("selected date and time must be in the future")
	ErrOutsideMonth   = errors.New("date is outside the rendered month")
	ErrUnknownSlot    = errors.New("time is not a bookable slot on the selected day")
	ErrNoDateSelected = errors.New("select a date before picking a time")
)

// Direction is a calendar navigation step.
type Direction int

const (
	Prev Direction = iota
	Next
)

// ViewState is the widget's calendar state: the rendered month plus the
// customer's current selection. It is rebuilt from scratch on every render
// rather than patched, so renders are re-entrant.
type ViewState struct {
	CurrentYear  int
	CurrentMonth time.Month
	SelectedDate string // YYYY-MM-DD, empty when none
	SelectedTime string // HH:MM, empty when none
}

// NewViewState returns the state the widget opens with: the current month,
// nothing selected.
func NewViewState(now time.Time) ViewState {
	return ViewState{
		CurrentYear:  now.Year(),
		CurrentMonth: now.Month(),
	}
}

// Reset returns the view to the current month with no selection. Called on
// widget close and after a successful booking.
func (v *ViewState) Reset(now time.Time) {
	*v = NewViewState(now)
}

// Navigate moves the rendered month one step, wrapping December/January
// with a year adjustment. The selection is left untouched.
func (v *ViewState) Navigate(dir Direction) {
	switch dir {
	case Prev:
		v.CurrentMonth--
		if v.CurrentMonth < time.January {
			v.CurrentMonth = time.December
			v.CurrentYear--
		}
	case Next:
		v.CurrentMonth++
		if v.CurrentMonth > time.December {
			v.CurrentMonth = time.January
			v.CurrentYear++
		}
	}
}

// Grid renders the current month as a 42-cell grid.
func (v *ViewState) Grid(now time.Time) []Cell {
	return MonthGrid(v.CurrentYear, v.CurrentMonth, now, v.SelectedDate)
}

// Label is the heading for the rendered month.
func (v *ViewState) Label() string {
	return MonthLabel(v.CurrentYear, v.CurrentMonth)
}

// SelectDate selects a day cell. Only enabled cells of the rendered month
// are selectable; a past or filler cell is rejected. Any previously picked
// time is cleared, since the new day may not offer it.
func (v *ViewState) SelectDate(date string, now time.Time) error {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if d.Year() != v.CurrentYear || d.Month() != v.CurrentMonth {
		return ErrOutsideMonth
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrPastDate
	}

	v.SelectedDate = date
	v.SelectedTime = ""
	return nil
}

// SelectTime picks a slot for the selected date. The time must be one of
// the table's slots for that weekday.
func (v *ViewState) SelectTime(hhmm string, table *schedule.Table) error {
	if v.SelectedDate == "" {
		return ErrNoDateSelected
	}

	ok, err := table.Bookable(v.SelectedDate, hhmm)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownSlot
	}

	v.SelectedTime = hhmm
	return nil
}

// SlotControl is one selectable time in the rendered slot list.
type SlotControl struct {
	Time     string `json:"time"`
	Display  string `json:"display"`
	Selected bool   `json:"selected"`
}

// SlotList is the rendered slot area for the selected date.
type SlotList struct {
	Closed bool          `json:"closed"`
	Notice string        `json:"notice,omitempty"`
	Slots  []SlotControl `json:"slots,omitempty"`
}

// TimeSlots renders the slot list for the selected date: nil when no date
// is selected, a closed notice naming the weekday when the day has no
// slots, otherwise the day's slots in table order with the current pick
// marked.
func (v *ViewState) TimeSlots(table *schedule.Table, now time.Time) *SlotList {
	if v.SelectedDate == "" {
		return nil
	}

	d, err := time.ParseInLocation("2006-01-02", v.SelectedDate, now.Location())
	if err != nil {
		return nil
	}

	day := table.Day(d.Weekday())
	if len(day.Slots) == 0 {
		return &SlotList{
			Closed: true,
			Notice: fmt.Sprintf("We're closed on %ss. Please select another day.", day.Name),
		}
	}

	list := &SlotList{Slots: make([]SlotControl, 0, len(day.Slots))}
	for _, slot := range day.Slots {
		list.Slots = append(list.Slots, SlotControl{
			Time:     slot.Time,
			Display:  slot.Display,
			Selected: v.SelectedTime == slot.Time,
		})
	}
	return list
}

// SelectedDateTime resolves the selection to a wall-clock timestamp in
// now's location.
func (v *ViewState) SelectedDateTime(now time.Time) (time.Time, error) {
	if v.SelectedDate == "" || v.SelectedTime == "" {
		return time.Time{}, ErrNoSelection
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", v.SelectedDate+"T"+v.SelectedTime, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid selection: %w", err)
	}
	return t, nil
}

// ValidateFuture rejects a selection that is not strictly after now. A
// failing selection never reaches the network.
func (v *ViewState) ValidateFuture(now time.Time) error {
	t, err := v.SelectedDateTime(now)
	if err != nil {
		return err
	}
	if !t.After(now) {
		return ErrPastDateTime
	}
	return nil
}
