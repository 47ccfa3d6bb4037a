package handlers

import (
	"log"
	"net/http"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/auth"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/services"
)

// ShipmentsHandler serves the authenticated dashboard surfaces.
// List returns coarse status buckets for summary counts; History keeps
// the fine-grained status so the detail surface loses nothing.
type ShipmentsHandler struct {
	Repo ports.ShipmentRepository
}

func (h *ShipmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	shipments, err := h.Repo.ListByUser(r.Context(), session.UserID)
	if err != nil {
		log.Printf("list shipments failed: user_id=%s err=%v", session.UserID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListShipmentsResponse{
		Shipments: make([]dto.ShipmentSummaryResponse, 0, len(shipments)),
	}
	for _, shipment := range shipments {
		view := services.Aggregate(shipment, shipment.Packages, shipment.TrackingEvents)
		res.Shipments = append(res.Shipments, dto.ShipmentSummaryResponse{
			TrackingNumber:     view.TrackingNumber,
			Status:             string(view.StatusBucket),
			OriginCity:         view.Origin.City,
			OriginCountry:      view.Origin.Country,
			DestinationCity:    view.Destination.City,
			DestinationCountry: view.Destination.Country,
			CreatedAt:          view.CreatedAt,
			EstimatedDelivery:  view.EstimatedDelivery,
			DeliveredAt:        view.DeliveredAt,
			TotalWeight:        view.TotalWeight,
			TotalPieces:        view.TotalPieces,
			TotalDeclaredValue: view.TotalDeclaredValue,
			LastUpdate:         view.LastUpdateMessage,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ShipmentsHandler) History(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	shipments, err := h.Repo.ListByUser(r.Context(), session.UserID)
	if err != nil {
		log.Printf("shipment history failed: user_id=%s err=%v", session.UserID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListShipmentHistoryResponse{
		Shipments: make([]dto.ShipmentHistoryResponse, 0, len(shipments)),
	}
	for _, shipment := range shipments {
		view := services.Aggregate(shipment, shipment.Packages, shipment.TrackingEvents)
		res.Shipments = append(res.Shipments, dto.ShipmentHistoryResponse{
			TrackingNumber:     view.TrackingNumber,
			Status:             string(view.CurrentStatus),
			OriginCity:         view.Origin.City,
			OriginCountry:      view.Origin.Country,
			DestinationCity:    view.Destination.City,
			DestinationCountry: view.Destination.Country,
			CreatedAt:          view.CreatedAt,
			EstimatedDelivery:  view.EstimatedDelivery,
			DeliveredAt:        view.DeliveredAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
