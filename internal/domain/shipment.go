package domain

import (
	"errors"
	"time"
)

// Returned by repositories when a tracking number does not resolve.
// Routine lookup misses are signalled with this sentinel, never a raw
// storage error.
var ErrShipmentNotFound = errors.New("shipment not found")

// Enumerated service levels offered for a shipment.
type ServiceType string

const (
	ServiceGround  ServiceType = "ground"
	ServiceAir     ServiceType = "air"
	ServiceOcean   ServiceType = "ocean"
	ServiceExpress ServiceType = "express"
)

// One side of a shipment's journey (origin or destination).
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Represents a single shipment identified by its tracking number.
// The tracking number is unique and immutable once assigned.
// A shipment owns its packages and tracking events; this subsystem
// only ever reads them.
type Shipment struct {
	ID                  int
	TrackingNumber      string
	Origin              Address
	Destination         Address
	ServiceType         ServiceType
	SpecialInstructions string
	IsPaid              bool
	CreatedAt           time.Time
	EstimatedDelivery   time.Time
	DeliveredAt         *time.Time
	Sender              *Sender
	Recipient           Recipient
	Packages            []Package
	TrackingEvents      []TrackingEvent
}

// A timestamped record describing a change in a shipment's location or
// state. Events are stored in timestamp-ascending order, but nothing in
// this subsystem relies on that ordering.
type TrackingEvent struct {
	ID        int
	Timestamp time.Time
	Location  string
	Status    string
	Message   string
}
