package dto

import "time"

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type ContactResponse struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type PackageResponse struct {
	PackageType   string   `json:"package_type"`
	Description   string   `json:"description"`
	Length        float64  `json:"length"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Weight        float64  `json:"weight"`
	DeclaredValue *float64 `json:"declared_value"`
	Pieces        int      `json:"pieces"`
	Dangerous     bool     `json:"dangerous"`
	Insured       bool     `json:"insured"`
}

type TrackingEventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

type TrackingResponse struct {
	TrackingNumber     string                  `json:"tracking_number"`
	ServiceType        string                  `json:"service_type"`
	CurrentStatus      string                  `json:"current_status"`
	LastUpdateMessage  string                  `json:"last_update_message"`
	LastEventAt        *time.Time              `json:"last_event_at"`
	CreatedAt          time.Time               `json:"created_at"`
	EstimatedDelivery  time.Time               `json:"estimated_delivery"`
	DeliveredAt        *time.Time              `json:"delivered_at"`
	IsPaid             bool                    `json:"is_paid"`
	Origin             AddressResponse         `json:"origin"`
	Destination        AddressResponse         `json:"destination"`
	Sender             *ContactResponse        `json:"sender,omitempty"`
	Recipient          ContactResponse         `json:"recipient"`
	Packages           []PackageResponse       `json:"packages"`
	Events             []TrackingEventResponse `json:"events"`
	TotalWeight        float64                 `json:"total_weight"`
	TotalDeclaredValue float64                 `json:"total_declared_value"`
	TotalPieces        int                     `json:"total_pieces"`
}
