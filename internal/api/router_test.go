package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-tracking-service/internal/auth"
	"shipment-tracking-service/internal/domain"
)

type stubShipmentRepo struct {
	shipments []*domain.Shipment
}

func (s *stubShipmentRepo) GetByTrackingNumber(_ context.Context, tn string) (*domain.Shipment, error) {
	for _, sh := range s.shipments {
		if sh.TrackingNumber == tn {
			return sh, nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (s *stubShipmentRepo) ListByUser(context.Context, string) ([]*domain.Shipment, error) {
	return s.shipments, nil
}

type stubSupportRepo struct{}

func (stubSupportRepo) Create(context.Context, *domain.SupportRequest) error { return nil }

func testRouter(t *testing.T) (http.Handler, *auth.TokenService) {
	t.Helper()

	policy, err := domain.NewTrackingNumberPolicy(domain.DefaultTrackingNumberPattern)
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)

	router := NewRouter(RouterConfig{
		Shipments: &stubShipmentRepo{shipments: []*domain.Shipment{{
			TrackingNumber:    "AWB-ROUTED01",
			ServiceType:       domain.ServiceGround,
			CreatedAt:         time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EstimatedDelivery: time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC),
			Recipient:         domain.Recipient{Name: "Sam Ortiz", Phone: "+1 (555) 010-0000"},
			Packages:          []domain.Package{{PackageType: "box", Weight: 1, Pieces: 1}},
		}}},
		Support: stubSupportRepo{},
		Tokens:  tokens,
		Policy:  policy,
	})

	return router, tokens
}

func TestRouterHealth(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterTrackIsPublic(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track/AWB-ROUTED01", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AWB-ROUTED01", body["tracking_number"])
}

func TestRouterShipmentsRequiresToken(t *testing.T) {
	router, _ := testRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/shipments", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouterShipmentsWithValidToken(t *testing.T) {
	router, tokens := testRouter(t)

	token, err := tokens.Generate("usr-1", "sam@example.com", "customer")
	require.NoError(t, err)

	for _, path := range []string{"/shipments", "/shipments/history"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		r.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/track/AWB-ROUTED01", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
