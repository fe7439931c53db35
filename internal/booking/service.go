package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
)

type CreateRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// UpdateRequest replaces both dates of a booking.
type UpdateRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	// Update replaces the booking stored under id, or creates it when id is unknown.
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Cancel(ctx context.Context, id string) error
	BookedDates(ctx context.Context) ([]time.Time, error)
	AvailableDates(ctx context.Context) ([]time.Time, error)
}

type service struct {
	repo      Repository
	engine    *Engine
	publisher EventPublisher
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, engine *Engine, publisher EventPublisher, log *slog.Logger) Service {
	if publisher == nil {
		publisher = NewNoopPublisher()
	}
	if log == nil {
		log = slog.Default()
	}
	return &service{
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b := &Booking{
		ID:        uuid.NewString(),
		CheckIn:   calendar.DateOf(req.CheckIn),
		CheckOut:  calendar.DateOf(req.CheckOut),
		CreatedAt: s.createdAt(),
	}

	if err := s.validate(ctx, b); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "booking created",
		"id", b.ID,
		"check_in", calendar.FormatDate(b.CheckIn),
		"check_out", calendar.FormatDate(b.CheckOut),
	)
	s.publish(ctx, EventCreated, b)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	b := &Booking{
		ID:        id,
		CheckIn:   calendar.DateOf(req.CheckIn),
		CheckOut:  calendar.DateOf(req.CheckOut),
		CreatedAt: s.createdAt(),
	}
	if existing != nil {
		b.CreatedAt = existing.CreatedAt
	}

	if err := s.validate(ctx, b); err != nil {
		return nil, err
	}

	eventType := EventUpdated
	if existing == nil {
		eventType = EventCreated
		err = s.repo.Create(ctx, b)
	} else {
		err = s.repo.Update(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "booking saved",
		"id", b.ID,
		"event", string(eventType),
		"check_in", calendar.FormatDate(b.CheckIn),
		"check_out", calendar.FormatDate(b.CheckOut),
	)
	s.publish(ctx, eventType, b)
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "booking cancelled", "id", id)
	s.publish(ctx, EventCancelled, &Booking{ID: id})
	return nil
}

func (s *service) BookedDates(ctx context.Context) ([]time.Time, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.engine.BookedDates(all)
	if err != nil {
		return nil, err
	}
	return booked.Sorted(), nil
}

func (s *service) AvailableDates(ctx context.Context) ([]time.Time, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.engine.AvailableDates(all)
	if err != nil {
		return nil, err
	}
	return available.Sorted(), nil
}

// createdAt is the current time at millisecond precision, which Postgres and Mongo both keep.
func (s *service) createdAt() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// validate runs the engine against the current snapshot of stored bookings.
func (s *service) validate(ctx context.Context, b *Booking) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	msgs, err := s.engine.Validate(b, all)
	if err != nil {
		return err
	}
	if len(msgs) > 0 {
		s.log.InfoContext(ctx, "validation errors found for booking",
			"id", b.ID,
			"check_in", calendar.FormatDate(b.CheckIn),
			"check_out", calendar.FormatDate(b.CheckOut),
			"errors", msgs,
		)
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// publish never fails the request: the booking is already stored.
func (s *service) publish(ctx context.Context, t EventType, b *Booking) {
	if err := s.publisher.Publish(ctx, newEvent(t, b, s.now())); err != nil {
		s.log.WarnContext(ctx, "failed to publish booking event",
			"id", b.ID,
			"event", string(t),
			"error", err,
		)
	}
}
