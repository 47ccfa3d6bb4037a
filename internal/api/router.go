package api

import (
	"net/http"
	"time"

	"shipment-tracking-service/internal/api/handlers"
	"shipment-tracking-service/internal/auth"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
)

// RouterConfig collects the dependencies the HTTP layer needs. The
// cache is optional; with a nil cache every airway bill is rendered
// on demand.
type RouterConfig struct {
	Shipments ports.ShipmentRepository
	Support   ports.SupportRequestRepository
	Cache     ports.DocumentCache
	CacheTTL  time.Duration
	Tokens    *auth.TokenService
	Policy    *domain.TrackingNumberPolicy
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	tracking := &handlers.TrackingHandler{Repo: cfg.Shipments, Policy: cfg.Policy}
	airwayBill := &handlers.AirwayBillHandler{
		Repo:     cfg.Shipments,
		Policy:   cfg.Policy,
		Cache:    cfg.Cache,
		CacheTTL: cfg.CacheTTL,
	}
	shipments := &handlers.ShipmentsHandler{Repo: cfg.Shipments}
	support := &handlers.SupportHandler{Repo: cfg.Support, Policy: cfg.Policy}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /track/{trackingNumber}", tracking.Get)
	mux.HandleFunc("GET /airway-bill/{trackingNumber}", airwayBill.Generate)
	mux.HandleFunc("POST /support", support.Create)

	mux.Handle("GET /shipments", requireAuth(cfg.Tokens, http.HandlerFunc(shipments.List)))
	mux.Handle("GET /shipments/history", requireAuth(cfg.Tokens, http.HandlerFunc(shipments.History)))

	return loggingMiddleware(mux)
}
