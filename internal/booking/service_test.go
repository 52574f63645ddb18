package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syammullapudi-pixel/PitstopPros/internal/domain"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/gcal"
	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/events"
)

// ---------- Fakes ----------

type fakeInserter struct {
	calls          int
	lastCalendarID string
	lastEvent      *gcal.Event
	err            error
}

var _ gcal.Inserter = (*fakeInserter)(nil)

func (f *fakeInserter) InsertEvent(_ context.Context, calendarID string, ev *gcal.Event) (*gcal.CreatedEvent, error) {
	f.calls++
	f.lastCalendarID = calendarID
	f.lastEvent = ev
	if f.err != nil {
		return nil, f.err
	}
	return &gcal.CreatedEvent{ID: "evt-123", HTMLLink: "https://calendar.example/evt-123"}, nil
}

type sentMail struct {
	to      string
	subject string
	text    string
	html    string
}

type fakeMailer struct {
	sent   []sentMail
	failTo map[string]error
}

func (f *fakeMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	if err, ok := f.failTo[toEmail]; ok {
		return "", err
	}
	f.sent = append(f.sent, sentMail{to: toEmail, subject: subject, text: text, html: html})
	return "msg-id", nil
}

type fakeBus struct {
	subjects []string
	payloads []interface{}
}

func (f *fakeBus) Publish(_ context.Context, subject string, data interface{}) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func (f *fakeBus) Close() error { return nil }

// ---------- Helpers ----------

const ownerAddr = "owner@pitstoppros.com"

func newTestService(t *testing.T, inserter gcal.Inserter, mail *fakeMailer, bus events.Publisher) Service {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return NewService(Options{
		Inserter:   inserter,
		Mailer:     mail,
		Table:      schedule.New(),
		Bus:        bus,
		CalendarID: "shop@pitstoppros.com",
		OwnerEmail: ownerAddr,
		Location:   loc,
	})
}

func validRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ServiceType:     "Mobile Detail",
		CustomerName:    "Dana Fields",
		CustomerEmail:   "dana@example.com",
		CustomerPhone:   "+15555550100",
		CustomerAddress: "12 Elm St, Springfield, IL 62701",
		ServiceDate:     "2099-01-01", // a Thursday
		ServiceTime:     "10:00",
		VehicleInfo:     "2019 Honda Civic EX",
		Notes:           "gate code 4412",
	}
}

// ---------- CreateBooking ----------

func TestCreateBookingSuccess(t *testing.T) {
	inserter := &fakeInserter{}
	mail := &fakeMailer{}
	bus := &fakeBus{}
	svc := newTestService(t, inserter, mail, bus)

	outcome, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, "evt-123", outcome.EventID)
	assert.Equal(t, "https://calendar.example/evt-123", outcome.EventLink)
	assert.True(t, outcome.CustomerEmailSent)
	assert.True(t, outcome.OwnerEmailSent)

	// exactly one insert, then customer email, then owner email
	assert.Equal(t, 1, inserter.calls)
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "dana@example.com", mail.sent[0].to)
	assert.Equal(t, "Booking Confirmation - Pitstop Pros", mail.sent[0].subject)
	assert.Equal(t, ownerAddr, mail.sent[1].to)
	assert.Equal(t, "New Booking Created - Pitstop Pros", mail.sent[1].subject)

	// owner copy carries the customer's contact details
	assert.Contains(t, mail.sent[1].html, "dana@example.com")
	assert.Contains(t, mail.sent[1].html, "+15555550100")
	// both link the created event
	assert.Contains(t, mail.sent[0].html, "https://calendar.example/evt-123")
	assert.Contains(t, mail.sent[1].html, "https://calendar.example/evt-123")

	assert.Equal(t, []string{events.BookingCreated}, bus.subjects)
}

func TestCreateBookingEventWindow(t *testing.T) {
	inserter := &fakeInserter{}
	svc := newTestService(t, inserter, &fakeMailer{}, nil)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	ev := inserter.lastEvent
	require.NotNil(t, ev)

	loc, _ := time.LoadLocation("America/New_York")
	assert.True(t, ev.Start.Equal(time.Date(2099, time.January, 1, 10, 0, 0, 0, loc)), "start = %v", ev.Start)
	assert.True(t, ev.End.Equal(time.Date(2099, time.January, 1, 12, 0, 0, 0, loc)), "end = %v", ev.End)
	assert.Equal(t, 7200*time.Second, ev.End.Sub(ev.Start))
	assert.Equal(t, "America/New_York", ev.TimeZone)

	assert.Equal(t, "Mobile Detail - Dana Fields", ev.Summary)
	assert.Equal(t, "12 Elm St, Springfield, IL 62701", ev.Location)
	assert.Contains(t, ev.Description, "Vehicle: 2019 Honda Civic EX")
	assert.Contains(t, ev.Description, "Notes: gate code 4412")
	assert.Equal(t, "shop@pitstoppros.com", inserter.lastCalendarID)
}

func TestCreateBookingNotesDefaultToNone(t *testing.T) {
	inserter := &fakeInserter{}
	svc := newTestService(t, inserter, &fakeMailer{}, nil)

	req := validRequest()
	req.Notes = ""
	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, inserter.lastEvent.Description, "Notes: None")
}

func TestCreateBookingUnauthenticated(t *testing.T) {
	mail := &fakeMailer{}
	svc := newTestService(t, nil, mail, nil)

	outcome, err := svc.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCalendarNotReady)
	assert.Nil(t, outcome)
	assert.Empty(t, mail.sent)
}

func TestCreateBookingInsertFailureSendsNoEmails(t *testing.T) {
	inserter := &fakeInserter{err: errors.New("quota exceeded")}
	mail := &fakeMailer{}
	bus := &fakeBus{}
	svc := newTestService(t, inserter, mail, bus)

	outcome, err := svc.CreateBooking(context.Background(), validRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Nil(t, outcome)
	assert.Empty(t, mail.sent)
	assert.Empty(t, bus.subjects)
}

func TestCreateBookingPartialEmailFailure(t *testing.T) {
	inserter := &fakeInserter{}
	mail := &fakeMailer{failTo: map[string]error{"dana@example.com": errors.New("mailbox full")}}
	bus := &fakeBus{}
	svc := newTestService(t, inserter, mail, bus)

	outcome, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	// the booking exists on the calendar; the outcome says so
	assert.True(t, outcome.Success)
	assert.Equal(t, "evt-123", outcome.EventID)
	assert.False(t, outcome.CustomerEmailSent)
	assert.True(t, outcome.OwnerEmailSent)
	assert.Contains(t, outcome.Message, "could not be sent")

	// owner email is still attempted after the customer one fails
	require.Len(t, mail.sent, 1)
	assert.Equal(t, ownerAddr, mail.sent[0].to)

	assert.Equal(t, []string{events.BookingCreated}, bus.subjects)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(t, &fakeInserter{}, &fakeMailer{}, nil)

	tests := []struct {
		name          string
		mutate        func(*domain.BookingRequest)
		outOfSchedule bool
	}{
		{"missing name", func(r *domain.BookingRequest) { r.CustomerName = "" }, false},
		{"missing date", func(r *domain.BookingRequest) { r.ServiceDate = "" }, false},
		{"missing vehicle", func(r *domain.BookingRequest) { r.VehicleInfo = "" }, false},
		{"bad email", func(r *domain.BookingRequest) { r.CustomerEmail = "not-an-email" }, false},
		{"bad phone", func(r *domain.BookingRequest) { r.CustomerPhone = "12" }, false},
		{"bad date format", func(r *domain.BookingRequest) { r.ServiceDate = "01/01/2099" }, false},
		{"out-of-schedule slot", func(r *domain.BookingRequest) { r.ServiceTime = "15:00" }, true}, // no 3 PM on Thursdays
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.CreateBooking(context.Background(), req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.outOfSchedule, verr.OutOfSchedule)
		})
	}
}

func TestCreateBookingRejectsOutOfHoursDirectCall(t *testing.T) {
	// The widget only offers Monday evening slots; a hand-crafted request
	// for a Monday morning must not reach the calendar.
	inserter := &fakeInserter{}
	svc := newTestService(t, inserter, &fakeMailer{}, nil)

	req := validRequest()
	req.ServiceDate = "2099-01-05" // a Monday
	req.ServiceTime = "09:00"

	_, err := svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.OutOfSchedule)
	assert.Zero(t, inserter.calls)
}

// ---------- SendContactMessage ----------

func TestSendContactMessage(t *testing.T) {
	mail := &fakeMailer{}
	bus := &fakeBus{}
	svc := newTestService(t, nil, mail, bus)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "Sam Lee",
		Email:   "sam@example.com",
		Phone:   "+15555550123",
		Message: "Do you service diesel trucks?",
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, ownerAddr, mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Sam Lee")
	assert.Contains(t, mail.sent[0].html, "Do you service diesel trucks?")

	assert.Equal(t, []string{events.ContactReceived}, bus.subjects)
}

func TestSendContactMessageRequiresAllFields(t *testing.T) {
	mail := &fakeMailer{}
	svc := newTestService(t, nil, mail, nil)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:  "Sam Lee",
		Email: "sam@example.com",
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, mail.sent)
}

func TestSendContactMessageSendFailure(t *testing.T) {
	mail := &fakeMailer{failTo: map[string]error{ownerAddr: errors.New("smtp down")}}
	svc := newTestService(t, nil, mail, nil)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "Sam Lee",
		Email:   "sam@example.com",
		Phone:   "+15555550123",
		Message: "hello",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}
