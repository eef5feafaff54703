package main

import (
	"context"
	"time"

	"hostelbook/internal/reservations/handler"
	"hostelbook/internal/reservations/repository"
	"hostelbook/internal/reservations/service"
	"hostelbook/internal/reservations/validator"
	"hostelbook/pkg/app"
	"hostelbook/pkg/config"
	"hostelbook/pkg/events"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ensureIndexes(cfg)

	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	cfg.Log.Info("Starting Reservations service")

	reservationService, availabilityService := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewAPI(
			handler.NewReservationHandler(reservationService, cfg),
			handler.NewAvailabilityHandler(availabilityService, cfg),
		),
		handler.NewHealthHandler(cfg),
	)
	serverApp.Run()
}

func ensureIndexes(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repository.EnsureReservationIndexes(ctx, cfg); err != nil {
		cfg.Log.Fatal("Failed to create reservation indexes", "error", err)
	}
	if err := repository.EnsureLockIndexes(ctx, cfg); err != nil {
		cfg.Log.Fatal("Failed to create lock indexes", "error", err)
	}
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, event publication disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka publisher", "error", err)
	}
	cfg.Log.Info("Kafka publisher initialized", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaEventsTopic)
	return publisher
}

func initServices(cfg *config.Config, publisher events.Publisher) (service.ReservationService, service.AvailabilityService) {
	reservationValidator := validator.NewReservationValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	catalogRepo := repository.NewMongoCatalogRepository(cfg)
	lockRepo := repository.NewMongoSlotLockRepository(cfg)

	reservationService := service.NewReservationService(
		reservationRepo,
		catalogRepo,
		lockRepo,
		reservationValidator,
		publisher,
		cfg,
	)
	availabilityService := service.NewAvailabilityService(reservationRepo, catalogRepo, cfg)

	cfg.Log.Info("Reservation services initialized", "database", cfg.MongoDatabaseName)
	return reservationService, availabilityService
}
