package ports

import (
	"context"

	"shipment-tracking-service/internal/domain"
)

// Port: a boundary for persisting customer support requests.
type SupportRequestRepository interface {
	// Store a validated support request.
	Create(ctx context.Context, req *domain.SupportRequest) error
}
