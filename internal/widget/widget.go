package widget

import (
	"errors"
	"time"

	"github.com/syammullapudi-pixel/PitstopPros/internal/domain"
	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
)

// Phase is the widget's lifecycle state for one open/close cycle.
type Phase int

const (
	Closed Phase = iota
	Browsing
	DateSelected
	TimeSelected
	Submitting
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Browsing:
		return "browsing"
	case DateSelected:
		return "date_selected"
	case TimeSelected:
		return "time_selected"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

var (
	ErrWidgetClosed   = errors.New("widget is not open")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// Form carries the customer detail fields filled in alongside the calendar.
type Form struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	VehicleInfo     string
	Notes           string
}

// Widget models the booking overlay: a calendar ViewState plus the phase
// machine that gates submission. Opening resets the view to the current
// month; a successful submission closes and resets it; a failed one
// returns to the prior selection phase so the customer can resubmit.
type Widget struct {
	phase       Phase
	serviceType string
	view        ViewState
	table       *schedule.Table
}

func New(table *schedule.Table) *Widget {
	return &Widget{phase: Closed, table: table}
}

func (w *Widget) Phase() Phase        { return w.phase }
func (w *Widget) ServiceType() string { return w.serviceType }
func (w *Widget) View() *ViewState    { return &w.view }

// Open shows the widget with the service type pre-filled from the trigger
// that opened it.
func (w *Widget) Open(serviceType string, now time.Time) {
	w.serviceType = serviceType
	w.view = NewViewState(now)
	w.phase = Browsing
}

// Close dismisses the widget and discards the selection.
func (w *Widget) Close(now time.Time) {
	w.view.Reset(now)
	w.serviceType = ""
	w.phase = Closed
}

// Navigate steps the rendered month. Legal in any open phase; the
// selection survives navigation.
func (w *Widget) Navigate(dir Direction) error {
	if w.phase == Closed {
		return ErrWidgetClosed
	}
	if w.phase == Submitting {
		return ErrSubmitInFlight
	}
	w.view.Navigate(dir)
	return nil
}

func (w *Widget) SelectDate(date string, now time.Time) error {
	if w.phase == Closed {
		return ErrWidgetClosed
	}
	if w.phase == Submitting {
		return ErrSubmitInFlight
	}
	if err := w.view.SelectDate(date, now); err != nil {
		return err
	}
	// SelectDate cleared any picked time, so a fresh slot pick is required.
	w.phase = DateSelected
	return nil
}

func (w *Widget) SelectTime(hhmm string, now time.Time) error {
	if w.phase == Closed {
		return ErrWidgetClosed
	}
	if w.phase == Submitting {
		return ErrSubmitInFlight
	}
	if err := w.view.SelectTime(hhmm, w.table); err != nil {
		return err
	}
	w.phase = TimeSelected
	return nil
}

// BeginSubmit validates the selection is complete and in the future, then
// moves to Submitting (disabling further input) and returns the request to
// POST. Validation failures keep the current phase so the customer can fix
// the form without losing state.
func (w *Widget) BeginSubmit(form Form, now time.Time) (*domain.BookingRequest, error) {
	if w.phase == Closed {
		return nil, ErrWidgetClosed
	}
	if w.phase == Submitting {
		return nil, ErrSubmitInFlight
	}
	if err := w.view.ValidateFuture(now); err != nil {
		return nil, err
	}

	req := &domain.BookingRequest{
		ServiceType:     w.serviceType,
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		CustomerAddress: form.CustomerAddress,
		ServiceDate:     w.view.SelectedDate,
		ServiceTime:     w.view.SelectedTime,
		VehicleInfo:     form.VehicleInfo,
		Notes:           form.Notes,
	}

	w.phase = Submitting
	return req, nil
}

// SubmitSucceeded closes the widget and resets the calendar for next time.
func (w *Widget) SubmitSucceeded(now time.Time) {
	w.Close(now)
}

// SubmitFailed re-enables the form, returning to the phase implied by the
// surviving selection.
func (w *Widget) SubmitFailed() {
	if w.phase != Submitting {
		return
	}
	switch {
	case w.view.SelectedTime != "":
		w.phase = TimeSelected
	case w.view.SelectedDate != "":
		w.phase = DateSelected
	default:
		w.phase = Browsing
	}
}

// Grid renders the current month for display.
func (w *Widget) Grid(now time.Time) []Cell {
	return w.view.Grid(now)
}

// TimeSlots renders the slot list for the selected date.
func (w *Widget) TimeSlots(now time.Time) *SlotList {
	return w.view.TimeSlots(w.table, now)
}
