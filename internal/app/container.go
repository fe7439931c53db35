package app

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/api"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *slog.Logger

	Repository booking.Repository
	Publisher  booking.EventPublisher
	Clock      calendar.Clock
	// Ready is probed by /readyz. Nil means always ready.
	Ready func(ctx context.Context) error

	LatestDateInDays       int
	MaxBookingPeriodInDays int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	BookingService booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = calendar.NewSystemClock(nil)
	}

	// Booking Module
	engine := booking.NewEngine(calendar.New(cfg.Clock), cfg.LatestDateInDays, cfg.MaxBookingPeriodInDays)
	bookingService := booking.NewService(cfg.Repository, engine, cfg.Publisher, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		BookingService: bookingService,
		Ready:          cfg.Ready,
	})

	return &Container{
		Router:         router,
		BookingService: bookingService,
	}
}
