package gcal

import (
	"context"
	"time"
)

// Event is the provider-neutral shape of a booking calendar event.
type Event struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	// TimeZone labels Start/End for the provider; both are already
	// wall-clock times in the service time zone.
	TimeZone string
}

// CreatedEvent identifies an inserted event. HTMLLink goes into the
// confirmation emails.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// Inserter inserts one event into a calendar. The orchestrator depends on
// this, not on the Google client, so tests can fake the provider.
type Inserter interface {
	InsertEvent(ctx context.Context, calendarID string, ev *Event) (*CreatedEvent, error)
}
