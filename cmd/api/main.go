package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/eventpro/event-management-service/internal/auth"
	"github.com/eventpro/event-management-service/internal/config"
	"github.com/eventpro/event-management-service/internal/httpserver"
	"github.com/eventpro/event-management-service/internal/store"
)

// main boots the service: config → logger → stores (JSON files) → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Stores load their JSON snapshots up front; a missing or corrupt
	// file just means starting empty.
	events := store.NewEventStore(cfg.Data.EventsFile, logger)
	engagement := store.NewEngagementStore(cfg.Data.EngagementFile(), logger)
	tickets := store.NewTicketStore(cfg.Data.TicketsFile(), engagement, logger)
	bookings := store.NewBookingLedger()

	logger.Info("loaded data files",
		zap.Int("events", len(events.List())),
		zap.String("events_file", cfg.Data.EventsFile),
		zap.String("data_dir", cfg.Data.Dir))

	verifier := auth.StaticVerifier(cfg.Auth.Credentials)

	router := httpserver.NewRouter(verifier, httpserver.Stores{
		Events:     events,
		Engagement: engagement,
		Tickets:    tickets,
		Bookings:   bookings,
	})

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	log.Fatal(router.Run(":" + cfg.Server.Port))
}
