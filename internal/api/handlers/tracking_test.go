package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/domain"
)

// fakeShipmentRepo serves shipments from a map keyed by tracking
// number and can be forced to fail.
type fakeShipmentRepo struct {
	byTrackingNumber map[string]*domain.Shipment
	byUser           map[string][]*domain.Shipment
	err              error
}

func (f *fakeShipmentRepo) GetByTrackingNumber(_ context.Context, tn string) (*domain.Shipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byTrackingNumber[tn]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return s, nil
}

func (f *fakeShipmentRepo) ListByUser(_ context.Context, userID string) ([]*domain.Shipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func mustPolicy(t *testing.T) *domain.TrackingNumberPolicy {
	t.Helper()
	policy, err := domain.NewTrackingNumberPolicy(domain.DefaultTrackingNumberPattern)
	require.NoError(t, err)
	return policy
}

func handlerShipment() *domain.Shipment {
	value := 150.0
	return &domain.Shipment{
		ID:             1,
		TrackingNumber: "AWB-TEST001",
		Origin: domain.Address{
			Street: "1 First St", City: "Savannah", State: "GA",
			PostalCode: "31401", Country: "USA",
		},
		Destination: domain.Address{
			Street: "2 Second Ave", City: "Denver", State: "CO",
			PostalCode: "80202", Country: "USA",
		},
		ServiceType:       domain.ServiceAir,
		IsPaid:            true,
		CreatedAt:         time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		EstimatedDelivery: time.Date(2026, 8, 8, 17, 0, 0, 0, time.UTC),
		Sender:            &domain.Sender{Name: "Acme Shipping", Phone: "+1 (912) 555-0100"},
		Recipient:         domain.Recipient{Name: "Jo Castillo", Phone: "+1 (720) 555-0199"},
		Packages: []domain.Package{
			{PackageType: "box", Weight: 2.5, DeclaredValue: &value, Pieces: 1},
			{PackageType: "box", Weight: 1.5, Pieces: 2},
		},
		TrackingEvents: []domain.TrackingEvent{
			{Timestamp: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), Location: "Savannah, GA", Status: "picked_up", Message: "Picked up"},
			{Timestamp: time.Date(2026, 8, 4, 12, 0, 0, 0, time.UTC), Location: "Dallas, TX", Status: "in-transit", Message: "In transit"},
		},
	}
}

func trackRequest(trackingNumber string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/track/"+trackingNumber, nil)
	r.SetPathValue("trackingNumber", trackingNumber)
	return r
}

func TestTrackingGet(t *testing.T) {
	h := &TrackingHandler{
		Repo:   &fakeShipmentRepo{byTrackingNumber: map[string]*domain.Shipment{"AWB-TEST001": handlerShipment()}},
		Policy: mustPolicy(t),
	}

	w := httptest.NewRecorder()
	h.Get(w, trackRequest("awb-test001"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res dto.TrackingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.Equal(t, "AWB-TEST001", res.TrackingNumber)
	assert.Equal(t, "InTransit", res.CurrentStatus)
	assert.Equal(t, "In transit", res.LastUpdateMessage)
	assert.Equal(t, 4.0, res.TotalWeight)
	assert.Equal(t, 150.0, res.TotalDeclaredValue)
	assert.Equal(t, 3, res.TotalPieces)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "PickedUp", res.Events[0].Status)
	assert.Equal(t, "InTransit", res.Events[1].Status)
	require.NotNil(t, res.Sender)
	assert.Equal(t, "Acme Shipping", res.Sender.Name)
	assert.Nil(t, res.DeliveredAt)
}

func TestTrackingGetNotFound(t *testing.T) {
	h := &TrackingHandler{
		Repo:   &fakeShipmentRepo{byTrackingNumber: map[string]*domain.Shipment{}},
		Policy: mustPolicy(t),
	}

	w := httptest.NewRecorder()
	h.Get(w, trackRequest("AWB-MISSING01"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Shipment not found"}`, w.Body.String())
}

// Malformed tracking numbers are indistinguishable from misses on the
// wire.
func TestTrackingGetRejectsMalformedNumber(t *testing.T) {
	repo := &fakeShipmentRepo{err: errors.New("repo must not be called")}
	h := &TrackingHandler{Repo: repo, Policy: mustPolicy(t)}

	w := httptest.NewRecorder()
	h.Get(w, trackRequest("ab"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Shipment not found"}`, w.Body.String())
}

func TestTrackingGetRepoError(t *testing.T) {
	h := &TrackingHandler{
		Repo:   &fakeShipmentRepo{err: errors.New("boom")},
		Policy: mustPolicy(t),
	}

	w := httptest.NewRecorder()
	h.Get(w, trackRequest("AWB-TEST001"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
