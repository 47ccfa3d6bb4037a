package services

import (
	"time"

	"shipment-tracking-service/internal/domain"
)

// NoUpdatesMessage is the fixed fallback shown when a shipment has no
// tracking events yet.
const NoUpdatesMessage = "No updates available"

// ShipmentView is the aggregated, read-only projection of a shipment
// plus its packages and latest status. It feeds display surfaces and
// the airway bill builder and never writes back to its sources.
type ShipmentView struct {
	TrackingNumber      string
	ServiceType         domain.ServiceType
	Origin              domain.Address
	Destination         domain.Address
	Sender              *domain.Sender
	Recipient           domain.Recipient
	Packages            []domain.Package
	SpecialInstructions string
	IsPaid              bool
	CreatedAt           time.Time
	EstimatedDelivery   time.Time

	CurrentStatus     domain.Status
	StatusBucket      domain.StatusBucket
	LastUpdateMessage string
	LastEventAt       *time.Time
	DeliveredAt       *time.Time

	TotalWeight        float64
	TotalDeclaredValue float64
	TotalPieces        int
}

// Aggregate computes the derived view of a shipment: package totals,
// the current status from the chronologically last event, the last
// update message and the delivered date. Inputs are not mutated and
// event order is not assumed (the max-timestamp event wins even when
// the slice arrives unsorted).
func Aggregate(shipment *domain.Shipment, packages []domain.Package, events []domain.TrackingEvent) ShipmentView {
	view := ShipmentView{
		TrackingNumber:      shipment.TrackingNumber,
		ServiceType:         shipment.ServiceType,
		Origin:              shipment.Origin,
		Destination:         shipment.Destination,
		Sender:              shipment.Sender,
		Recipient:           shipment.Recipient,
		Packages:            packages,
		SpecialInstructions: shipment.SpecialInstructions,
		IsPaid:              shipment.IsPaid,
		CreatedAt:           shipment.CreatedAt,
		EstimatedDelivery:   shipment.EstimatedDelivery,
		CurrentStatus:       domain.StatusProcessing,
		StatusBucket:        domain.BucketProcessing,
		LastUpdateMessage:   NoUpdatesMessage,
	}

	pieceSum := 0
	for _, pkg := range packages {
		view.TotalWeight += pkg.Weight
		if pkg.DeclaredValue != nil {
			view.TotalDeclaredValue += *pkg.DeclaredValue
		}
		pieceSum += pkg.Pieces
	}

	// Piece counts default to the package count when the per-package
	// sums are missing; weight never defaults (see domain.Package).
	view.TotalPieces = pieceSum
	if pieceSum <= 0 {
		view.TotalPieces = len(packages)
	}

	if last := latestEvent(events); last != nil {
		view.CurrentStatus = domain.NormalizeStatus(last.Status)
		view.StatusBucket = domain.NormalizeStatusBucket(last.Status)
		view.LastUpdateMessage = last.Message
		ts := last.Timestamp
		view.LastEventAt = &ts
	}

	view.DeliveredAt = deliveredAt(shipment, events)

	return view
}

// latestEvent returns the max-timestamp event, or nil when none exist.
func latestEvent(events []domain.TrackingEvent) *domain.TrackingEvent {
	var last *domain.TrackingEvent
	for i := range events {
		if last == nil || events[i].Timestamp.After(last.Timestamp) {
			last = &events[i]
		}
	}
	return last
}

// deliveredAt prefers an explicit delivered event over the shipment's
// own delivered-timestamp field; nil means not yet delivered.
func deliveredAt(shipment *domain.Shipment, events []domain.TrackingEvent) *time.Time {
	var delivered *time.Time
	for i := range events {
		if domain.NormalizeStatus(events[i].Status) != domain.StatusDelivered {
			continue
		}
		if delivered == nil || events[i].Timestamp.After(*delivered) {
			ts := events[i].Timestamp
			delivered = &ts
		}
	}
	if delivered != nil {
		return delivered
	}
	return shipment.DeliveredAt
}
