package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/syammullapudi-pixel/PitstopPros/pkg/logger"
)

// Publisher is the booking service's outbound event surface. Publication
// is best-effort: a failed publish never fails the booking.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// NoopBus is used when NATS_URL is unset; publishes vanish.
type NoopBus struct{}

func (NoopBus) Publish(context.Context, string, interface{}) error { return nil }
func (NoopBus) Close() error                                       { return nil }

// Subjects
const (
	BookingCreated  = "booking.created"
	ContactReceived = "contact.received"
)

// BookingCreatedEvent is published after a calendar event exists for the
// booking, regardless of email delivery.
type BookingCreatedEvent struct {
	EventID       string    `json:"event_id"`
	ServiceType   string    `json:"service_type"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ServiceDate   string    `json:"service_date"`
	ServiceTime   string    `json:"service_time"`
	StartsAt      time.Time `json:"starts_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type ContactReceivedEvent struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}
