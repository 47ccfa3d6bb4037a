package dto

import "time"

type SupportRequestRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	TrackingNumber string `json:"tracking_number"`
	Category       string `json:"category"`
	Message        string `json:"message"`
}

type SupportRequestResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
