package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/app"
	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Pretty: !cfg.IsProduction, Level: cfg.LogLevel})
	slog.SetDefault(log)
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect storage
	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	publisher, closePublisher, err := app.OpenPublisher(cfg, log)
	if err != nil {
		log.Error("failed to open event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closePublisher(); err != nil {
			log.Warn("failed to close event publisher", "error", err)
		}
	}()

	container := app.NewContainer(app.Config{
		IsProduction:           cfg.IsProduction,
		ProdOrigins:            cfg.ProdOrigins,
		Logger:                 log,
		Repository:             storage.Repository,
		Publisher:              publisher,
		Clock:                  calendar.NewSystemClock(cfg.HotelLocation),
		Ready:                  storage.Ready,
		LatestDateInDays:       cfg.LatestDateInDays,
		MaxBookingPeriodInDays: cfg.MaxBookingPeriodInDays,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		log.Info("server running",
			"addr", cfg.HTTPAddr,
			"storage", cfg.StorageDriver,
			"latest_date_in_days", cfg.LatestDateInDays,
			"max_booking_period_in_days", cfg.MaxBookingPeriodInDays,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("server forced to shutdown", "error", err)
	}

	log.Info("server exited gracefully")
}
