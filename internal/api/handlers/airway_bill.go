package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/services"
)

// AirwayBillHandler generates the airway bill PDF for one shipment.
// Cache is optional; when nil every request renders from scratch,
// which is the contract's baseline behavior.
type AirwayBillHandler struct {
	Repo     ports.ShipmentRepository
	Policy   *domain.TrackingNumberPolicy
	Cache    ports.DocumentCache
	CacheTTL time.Duration
}

func (h *AirwayBillHandler) Generate(w http.ResponseWriter, r *http.Request) {
	trackingNumber := h.Policy.Coerce(r.PathValue("trackingNumber"))

	if !h.Policy.Valid(trackingNumber) {
		writeError(w, r, http.StatusNotFound, "Shipment not found")
		return
	}

	shipment, err := h.Repo.GetByTrackingNumber(r.Context(), trackingNumber)
	if errors.Is(err, domain.ErrShipmentNotFound) {
		writeError(w, r, http.StatusNotFound, "Shipment not found")
		return
	}
	if err != nil {
		log.Printf("airway bill lookup failed: tracking_number=%s err=%v", trackingNumber, err)
		writeError(w, r, http.StatusInternalServerError, "Failed to generate Airway Bill")
		return
	}

	view := services.Aggregate(shipment, shipment.Packages, shipment.TrackingEvents)

	// The key carries the latest event timestamp, so new tracking data
	// always misses and re-renders. Cache failures only cost a render.
	var cacheKey string
	if h.Cache != nil {
		lastEventAt := time.Time{}
		if view.LastEventAt != nil {
			lastEventAt = *view.LastEventAt
		}
		cacheKey = ports.DocumentCacheKey(trackingNumber, lastEventAt)

		doc, err := h.Cache.Get(r.Context(), cacheKey)
		if err != nil {
			log.Printf("airway bill cache get failed: tracking_number=%s err=%v", trackingNumber, err)
		} else if doc != nil {
			writePDF(w, r, trackingNumber, doc)
			return
		}
	}

	doc, err := services.BuildAirwayBill(view)
	if err != nil {
		log.Printf("airway bill generation failed: tracking_number=%s err=%v", trackingNumber, err)
		writeError(w, r, http.StatusInternalServerError, "Failed to generate Airway Bill")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), cacheKey, doc, h.CacheTTL); err != nil {
			log.Printf("airway bill cache put failed: tracking_number=%s err=%v", trackingNumber, err)
		}
	}

	writePDF(w, r, trackingNumber, doc)
}
