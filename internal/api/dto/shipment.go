package dto

import "time"

// Summary row for the dashboard: coarse status bucket plus totals.
type ShipmentSummaryResponse struct {
	TrackingNumber     string     `json:"tracking_number"`
	Status             string     `json:"status"`
	OriginCity         string     `json:"origin_city"`
	OriginCountry      string     `json:"origin_country"`
	DestinationCity    string     `json:"destination_city"`
	DestinationCountry string     `json:"destination_country"`
	CreatedAt          time.Time  `json:"created_at"`
	EstimatedDelivery  time.Time  `json:"estimated_delivery"`
	DeliveredAt        *time.Time `json:"delivered_at"`
	TotalWeight        float64    `json:"total_weight"`
	TotalPieces        int        `json:"total_pieces"`
	TotalDeclaredValue float64    `json:"total_declared_value"`
	LastUpdate         string     `json:"last_update"`
}

type ListShipmentsResponse struct {
	Shipments []ShipmentSummaryResponse `json:"shipments"`
}

// History row keeps the fine-grained status for the detail surface.
type ShipmentHistoryResponse struct {
	TrackingNumber     string     `json:"tracking_number"`
	Status             string     `json:"status"`
	OriginCity         string     `json:"origin_city"`
	OriginCountry      string     `json:"origin_country"`
	DestinationCity    string     `json:"destination_city"`
	DestinationCountry string     `json:"destination_country"`
	CreatedAt          time.Time  `json:"created_at"`
	EstimatedDelivery  time.Time  `json:"estimated_delivery"`
	DeliveredAt        *time.Time `json:"delivered_at"`
}

type ListShipmentHistoryResponse struct {
	Shipments []ShipmentHistoryResponse `json:"shipments"`
}
