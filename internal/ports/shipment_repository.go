package ports

import (
	"context"

	"shipment-tracking-service/internal/domain"
)

// Port: a boundary for retrieving Shipment aggregates from a data source.
type ShipmentRepository interface {
	// Retrieve one shipment with its sender, recipient, packages and
	// tracking events (timestamp ascending) by coerced tracking number.
	// A miss returns domain.ErrShipmentNotFound, not a storage error.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)

	// Retrieve all shipments belonging to one user, children included,
	// ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]*domain.Shipment, error)
}
