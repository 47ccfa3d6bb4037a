package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/auth"
	"shipment-tracking-service/internal/domain"
)

func sessionRequest(path, userID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	session := auth.Session{UserID: userID, Email: "user@example.com", Role: "customer"}
	return r.WithContext(auth.WithSession(r.Context(), session))
}

func TestShipmentsList(t *testing.T) {
	h := &ShipmentsHandler{
		Repo: &fakeShipmentRepo{byUser: map[string][]*domain.Shipment{
			"usr-1": {handlerShipment()},
		}},
	}

	w := httptest.NewRecorder()
	h.List(w, sessionRequest("/shipments", "usr-1"))

	require.Equal(t, http.StatusOK, w.Code)

	var res dto.ListShipmentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Shipments, 1)

	row := res.Shipments[0]
	assert.Equal(t, "AWB-TEST001", row.TrackingNumber)
	assert.Equal(t, "InTransit", row.Status)
	assert.Equal(t, "Savannah", row.OriginCity)
	assert.Equal(t, "Denver", row.DestinationCity)
	assert.Equal(t, 4.0, row.TotalWeight)
	assert.Equal(t, 3, row.TotalPieces)
	assert.Equal(t, "In transit", row.LastUpdate)
}

// Summary rows collapse to buckets; the history surface keeps the
// fine-grained status for the same shipment.
func TestShipmentsHistoryKeepsFineStatus(t *testing.T) {
	shipment := handlerShipment()
	shipment.TrackingEvents = append(shipment.TrackingEvents, domain.TrackingEvent{
		Timestamp: shipment.TrackingEvents[1].Timestamp.Add(24 * time.Hour),
		Location:  "Denver, CO",
		Status:    "arrived",
		Message:   "Arrived at destination facility",
	})

	h := &ShipmentsHandler{
		Repo: &fakeShipmentRepo{byUser: map[string][]*domain.Shipment{
			"usr-1": {shipment},
		}},
	}

	w := httptest.NewRecorder()
	h.History(w, sessionRequest("/shipments/history", "usr-1"))

	require.Equal(t, http.StatusOK, w.Code)

	var res dto.ListShipmentHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Shipments, 1)
	assert.Equal(t, "Arrived", res.Shipments[0].Status)
}

func TestShipmentsListEmpty(t *testing.T) {
	h := &ShipmentsHandler{Repo: &fakeShipmentRepo{}}

	w := httptest.NewRecorder()
	h.List(w, sessionRequest("/shipments", "usr-has-nothing"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"shipments":[]}`, w.Body.String())
}

func TestShipmentsListWithoutSession(t *testing.T) {
	h := &ShipmentsHandler{Repo: &fakeShipmentRepo{}}

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/shipments", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}
