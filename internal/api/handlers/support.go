package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
)

// SupportHandler accepts customer support requests from the public
// contact form.
type SupportHandler struct {
	Repo   ports.SupportRequestRepository
	Policy *domain.TrackingNumberPolicy
}

func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SupportRequestRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		writeError(w, r, http.StatusBadRequest, "name must be at least 2 characters")
		return
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid email address")
		return
	}

	message := strings.TrimSpace(req.Message)
	if len(message) < 10 {
		writeError(w, r, http.StatusBadRequest, "message must be at least 10 characters")
		return
	}

	trackingNumber := ""
	if strings.TrimSpace(req.TrackingNumber) != "" {
		trackingNumber = h.Policy.Coerce(req.TrackingNumber)
		if !h.Policy.Valid(trackingNumber) {
			writeError(w, r, http.StatusBadRequest, "invalid tracking number")
			return
		}
	}

	support := &domain.SupportRequest{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		TrackingNumber: trackingNumber,
		Category:       strings.TrimSpace(req.Category),
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	}

	if err := h.Repo.Create(r.Context(), support); err != nil {
		log.Printf("create support request failed: err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.SupportRequestResponse{
		ID:        support.ID,
		CreatedAt: support.CreatedAt,
	})
}
