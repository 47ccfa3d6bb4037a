package handlers

import (
	"errors"
	"log"
	"net/http"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/services"
)

// TrackingHandler exposes the public tracking-number lookup.
type TrackingHandler struct {
	Repo   ports.ShipmentRepository
	Policy *domain.TrackingNumberPolicy
}

func (h *TrackingHandler) Get(w http.ResponseWriter, r *http.Request) {
	trackingNumber := h.Policy.Coerce(r.PathValue("trackingNumber"))

	// Tokens outside the configured grammar cannot name a shipment;
	// answer exactly like a lookup miss without touching storage.
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
		log.Printf("tracking lookup failed: tracking_number=%s err=%v", trackingNumber, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	view := services.Aggregate(shipment, shipment.Packages, shipment.TrackingEvents)
	writeJSON(w, r, http.StatusOK, trackingResponse(shipment, view))
}

func trackingResponse(shipment *domain.Shipment, view services.ShipmentView) dto.TrackingResponse {
	res := dto.TrackingResponse{
		TrackingNumber:     view.TrackingNumber,
		ServiceType:        string(view.ServiceType),
		CurrentStatus:      string(view.CurrentStatus),
		LastUpdateMessage:  view.LastUpdateMessage,
		LastEventAt:        view.LastEventAt,
		CreatedAt:          view.CreatedAt,
		EstimatedDelivery:  view.EstimatedDelivery,
		DeliveredAt:        view.DeliveredAt,
		IsPaid:             view.IsPaid,
		Origin:             addressResponse(view.Origin),
		Destination:        addressResponse(view.Destination),
		Recipient:          contactResponse(view.Recipient.Name, view.Recipient.Company, view.Recipient.Email, view.Recipient.Phone),
		Packages:           make([]dto.PackageResponse, 0, len(view.Packages)),
		Events:             make([]dto.TrackingEventResponse, 0, len(shipment.TrackingEvents)),
		TotalWeight:        view.TotalWeight,
		TotalDeclaredValue: view.TotalDeclaredValue,
		TotalPieces:        view.TotalPieces,
	}

	if view.Sender != nil {
		sender := contactResponse(view.Sender.Name, view.Sender.Company, view.Sender.Email, view.Sender.Phone)
		res.Sender = &sender
	}

	for _, pkg := range view.Packages {
		res.Packages = append(res.Packages, dto.PackageResponse{
			PackageType:   pkg.PackageType,
			Description:   pkg.Description,
			Length:        pkg.Length,
			Width:         pkg.Width,
			Height:        pkg.Height,
			Weight:        pkg.Weight,
			DeclaredValue: pkg.DeclaredValue,
			Pieces:        pkg.Pieces,
			Dangerous:     pkg.Dangerous,
			Insured:       pkg.Insured,
		})
	}

	// Detail surface: every event keeps its fine-grained status.
	for _, event := range shipment.TrackingEvents {
		res.Events = append(res.Events, dto.TrackingEventResponse{
			Timestamp: event.Timestamp,
			Location:  event.Location,
			Status:    string(domain.NormalizeStatus(event.Status)),
			Message:   event.Message,
		})
	}

	return res
}

func addressResponse(a domain.Address) dto.AddressResponse {
	return dto.AddressResponse{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func contactResponse(name, company, email, phone string) dto.ContactResponse {
	return dto.ContactResponse{Name: name, Company: company, Email: email, Phone: phone}
}
