package main

import (
	"os"
	"os/signal"
	"syscall"

	"salon/internal/config"
	"salon/internal/database"
	"salon/internal/logging"
	"salon/internal/repositories"
	"salon/internal/server"
	"salon/internal/services"
	"salon/pkg/rabbitmq"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info", "json")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// --- Persistence ---
	serviceRepo, bookingRepo, db, err := openRepositories(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open repositories")
	}
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				log.Error().Err(err).Msg("failed to close database")
			}
		}()
	}

	// --- Domain events (optional) ---
	var events services.EventPublisher
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient
		startEventLog(cfg, mqClient, log)
	} else {
		log.Info().Msg("RABBITMQ_URL not set, domain events disabled")
	}

	// --- Services and HTTP ---
	app := server.New(server.Options{
		Services:         services.NewServiceService(serviceRepo, events, log),
		Bookings:         services.NewBookingService(bookingRepo, serviceRepo, events, log),
		Logger:           log,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server starting")
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}

// openRepositories picks the repository implementations for the configured driver.
// db is nil for the memory driver.
func openRepositories(cfg *config.Config, log zerolog.Logger) (repositories.ServiceRepository, repositories.BookingRepository, *gorm.DB, error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		log.Warn().Msg("using in-memory repositories, data is lost on restart")
		return repositories.NewMemoryServiceRepository(), repositories.NewMemoryBookingRepository(), nil, nil
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return repositories.NewGORMServiceRepository(db), repositories.NewGORMBookingRepository(db), db, nil
}

type eventConsumer interface {
	ConsumeEvents(handler func(rabbitmq.Event) error) error
}

// startEventLog consumes the events queue into the log when RABBITMQ_LOG_EVENTS is set.
func startEventLog(cfg *config.Config, consumer eventConsumer, log zerolog.Logger) {
	if !cfg.EventLogEnabled() {
		return
	}
	if err := consumer.ConsumeEvents(logEvent(log)); err != nil {
		log.Error().Err(err).Msg("failed to start event consumer")
	}
}

// logEvent is the consumer handler: every domain event is written to the log.
func logEvent(log zerolog.Logger) func(rabbitmq.Event) error {
	return func(e rabbitmq.Event) error {
		log.Info().
			Str("event", e.Type).
			Time("occurred_at", e.OccurredAt).
			RawJSON("payload", e.Payload).
			Msg("domain event")
		return nil
	}
}
