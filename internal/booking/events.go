package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
)

type EventType string

const (
	EventCreated   EventType = "booking.created"
	EventUpdated   EventType = "booking.updated"
	EventCancelled EventType = "booking.cancelled"
)

// Event announces a committed change to a booking.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id"`
	CheckIn    string    `json:"check_in,omitempty"`
	CheckOut   string    `json:"check_out,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEvent(t EventType, b *Booking, now time.Time) Event {
	return Event{
		Type:       t,
		BookingID:  b.ID,
		CheckIn:    calendar.FormatDate(b.CheckIn),
		CheckOut:   calendar.FormatDate(b.CheckOut),
		OccurredAt: now.UTC(),
	}
}

// EventPublisher delivers booking events to interested systems.
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, e Event) error {
	return nil
}

// MessageProducer is the broker client used by the broker-backed publisher.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type brokerPublisher struct {
	producer MessageProducer
	topic    string
}

// NewBrokerPublisher publishes JSON events to topic, keyed by booking ID so that all
// events of one booking stay ordered.
func NewBrokerPublisher(producer MessageProducer, topic string) EventPublisher {
	return &brokerPublisher{producer: producer, topic: topic}
}

func (p *brokerPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal booking event failed: %w", err)
	}
	headers := map[string]string{"event_type": string(e.Type)}
	if err := p.producer.Publish(ctx, p.topic, e.BookingID, payload, headers); err != nil {
		return fmt.Errorf("publish booking event failed: %w", err)
	}
	return nil
}
