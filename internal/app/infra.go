package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/broker/kafka"
)

// Storage is an opened booking store together with its readiness probe.
type Storage struct {
	Repository booking.Repository
	Ready      func(ctx context.Context) error
	Close      func()
}

// OpenStorage connects the backend selected by cfg.StorageDriver and prepares its schema.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{
			Repository: booking.NewPgxRepository(pool),
			Ready:      pool.Ping,
			Close:      pool.Close,
		}, nil

	case config.StorageMongo:
		database, err := db.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureMongoIndexes(ctx, database); err != nil {
			_ = database.Client().Disconnect(context.Background())
			return nil, err
		}
		return &Storage{
			Repository: booking.NewMongoRepository(database),
			Ready: func(ctx context.Context) error {
				return database.Client().Ping(ctx, nil)
			},
			Close: func() { _ = database.Client().Disconnect(context.Background()) },
		}, nil

	case config.StorageMemory:
		return &Storage{
			Repository: booking.NewMemoryRepository(),
			Close:      func() {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

// OpenPublisher returns a Kafka-backed publisher when brokers are configured and a
// no-op publisher otherwise. The returned close function is never nil.
func OpenPublisher(cfg *config.Config, log *slog.Logger) (booking.EventPublisher, func() error, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("no kafka brokers configured, booking events are dropped")
		return booking.NewNoopPublisher(), func() error { return nil }, nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return booking.NewBrokerPublisher(producer, cfg.KafkaTopic), producer.Close, nil
}
