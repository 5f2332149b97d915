// Package main provides the webhook router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/WareOnGo/whatsapp-logistics-bot/cmd/warehouse-bot/handlers"
	"github.com/WareOnGo/whatsapp-logistics-bot/cmd/warehouse-bot/middleware"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/config"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
)

// NewRouter creates the webhook router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config,
	manager *listing.Manager, allowList listing.AllowList, audit listing.AuditLog) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	// Health check (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"warehouse-bot"}`))
	})

	webhookHandler := handlers.NewWebhookHandler(logger, manager, allowList, audit)

	r.Route("/webhook", func(r chi.Router) {
		if cfg.Twilio.ValidateSignature {
			r.Use(middleware.TwilioSignature(logger, cfg.Twilio))
		}
		r.Post("/whatsapp", webhookHandler.Receive)
	})

	return r
}
