package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/syammullapudi-pixel/PitstopPros/internal/domain"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/gcal"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/mailer"
	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
	"github.com/syammullapudi-pixel/PitstopPros/internal/utils"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/events"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/logger"
)

type Service interface {
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingOutcome, error)
	SendContactMessage(ctx context.Context, req *domain.ContactRequest) error
}

type bookingService struct {
	inserter   gcal.Inserter // nil until calendar auth succeeds at startup
	mail       mailer.Service
	table      *schedule.Table
	bus        events.Publisher
	calendarID string
	ownerEmail string
	loc        *time.Location
	tzName     string
	duration   time.Duration
}

// Options wires the orchestrator. Inserter may be nil when calendar auth
// failed at startup; every booking then fails with ErrCalendarNotReady
// until the process is restarted with working credentials.
type Options struct {
	Inserter      gcal.Inserter
	Mailer        mailer.Service
	Table         *schedule.Table
	Bus           events.Publisher
	CalendarID    string
	OwnerEmail    string
	Location      *time.Location
	EventDuration time.Duration
}

func NewService(opts Options) Service {
	if opts.EventDuration <= 0 {
		opts.EventDuration = 2 * time.Hour
	}
	if opts.Bus == nil {
		opts.Bus = events.NoopBus{}
	}
	return &bookingService{
		inserter:   opts.Inserter,
		mail:       opts.Mailer,
		table:      opts.Table,
		bus:        opts.Bus,
		calendarID: opts.CalendarID,
		ownerEmail: opts.OwnerEmail,
		loc:        opts.Location,
		tzName:     opts.Location.String(),
		duration:   opts.EventDuration,
	}
}

// CreateBooking turns one request into a calendar event and two emails:
// a confirmation to the customer, then a notification to the owner. The
// insert gates the emails, so a customer is never told about a booking
// that does not exist on the calendar. Email failures after a successful
// insert are reported as partial success, not total failure.
func (s *bookingService) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingOutcome, error) {
	if s.inserter == nil {
		return nil, ErrCalendarNotReady
	}

	if err := s.validateBookingRequest(req); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation("2006-01-02T15:04", req.ServiceDate+"T"+req.ServiceTime, s.loc)
	if err != nil {
		return nil, &ValidationError{Field: "serviceDate", Reason: "invalid date or time format"}
	}
	end := start.Add(s.duration)

	notes := req.Notes
	if notes == "" {
		notes = "None"
	}

	ev := &gcal.Event{
		Summary: fmt.Sprintf("%s - %s", req.ServiceType, req.CustomerName),
		Description: fmt.Sprintf("Customer: %s\nPhone: %s\nAddress: %s\nVehicle: %s\nNotes: %s",
			req.CustomerName, req.CustomerPhone, req.CustomerAddress, req.VehicleInfo, notes),
		Location: req.CustomerAddress,
		Start:    start,
		End:      end,
		TimeZone: s.tzName,
	}

	created, err := s.inserter.InsertEvent(ctx, s.calendarID, ev)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	outcome := &domain.BookingOutcome{
		Success:   true,
		EventID:   created.ID,
		EventLink: created.HTMLLink,
		Message:   "Booking confirmed and added to calendar",
	}

	subject, text, html := customerEmail(req, start, created.HTMLLink)
	if _, err := s.mail.Send(req.CustomerEmail, req.CustomerName, subject, text, html); err != nil {
		logger.ErrorContext(ctx, "Failed to send customer confirmation email",
			"error", err, "event_id", created.ID, "to", req.CustomerEmail)
	} else {
		outcome.CustomerEmailSent = true
	}

	subject, text, html = ownerEmail(req, start, created.HTMLLink)
	if _, err := s.mail.Send(s.ownerEmail, "", subject, text, html); err != nil {
		logger.ErrorContext(ctx, "Failed to send owner notification email",
			"error", err, "event_id", created.ID, "to", s.ownerEmail)
	} else {
		outcome.OwnerEmailSent = true
	}

	if !outcome.CustomerEmailSent || !outcome.OwnerEmailSent {
		outcome.Message = "Booking confirmed and added to calendar, but a confirmation email could not be sent"
	}

	event := events.BookingCreatedEvent{
		EventID:       created.ID,
		ServiceType:   req.ServiceType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ServiceDate:   req.ServiceDate,
		ServiceTime:   req.ServiceTime,
		StartsAt:      start,
		CreatedAt:     time.Now(),
	}
	if err := s.bus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "event_id", created.ID)
	}

	return outcome, nil
}

// SendContactMessage emails one contact form submission to the owner.
func (s *bookingService) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		return &ValidationError{Reason: "all fields are required"}
	}
	if !utils.IsValidEmail(req.Email) {
		return &ValidationError{Field: "email", Reason: "invalid email address"}
	}

	subject, text, html := contactEmail(req)
	if _, err := s.mail.Send(s.ownerEmail, "", subject, text, html); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	event := events.ContactReceivedEvent{
		Name:       req.Name,
		Email:      req.Email,
		ReceivedAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, events.ContactReceived, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact received event", "error", err)
	}

	return nil
}

func (s *bookingService) validateBookingRequest(req *domain.BookingRequest) error {
	required := []struct{ field, value string }{
		{"serviceType", req.ServiceType},
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"customerPhone", req.CustomerPhone},
		{"customerAddress", req.CustomerAddress},
		{"serviceDate", req.ServiceDate},
		{"serviceTime", req.ServiceTime},
		{"vehicleInfo", req.VehicleInfo},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Reason: "is required"}
		}
	}

	if !utils.IsValidEmail(req.CustomerEmail) {
		return &ValidationError{Field: "customerEmail", Reason: "invalid email address"}
	}
	if !utils.IsValidPhone(req.CustomerPhone) {
		return &ValidationError{Field: "customerPhone", Reason: "invalid phone number"}
	}

	// The widget only offers table slots, but the API is open; re-check so
	// a hand-crafted request cannot book outside business hours.
	ok, err := s.table.Bookable(req.ServiceDate, req.ServiceTime)
	if err != nil {
		return &ValidationError{Field: "serviceDate", Reason: "invalid date format"}
	}
	if !ok {
		return &ValidationError{
			Field:         "serviceTime",
			Reason:        "not a bookable slot for that day",
			OutOfSchedule: true,
		}
	}

	return nil
}
