package domain

import "time"

// A customer support request captured from the public contact form.
// TrackingNumber and Category are optional; validation of the required
// fields happens at the API boundary before the record is persisted.
type SupportRequest struct {
	ID             string
	Name           string
	Email          string
	TrackingNumber string
	Category       string
	Message        string
	CreatedAt      time.Time
}
