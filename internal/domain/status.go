package domain

import "strings"

// Canonical shipment lifecycle state. Upstream event sources are not
// schema-controlled, so raw status strings are mapped onto this closed
// set and never stored back.
type Status string

const (
	StatusProcessing          Status = "Processing"
	StatusPending             Status = "Pending"
	StatusPickedUp            Status = "PickedUp"
	StatusDeparted            Status = "Departed"
	StatusArrived             Status = "Arrived"
	StatusInTransit           Status = "InTransit"
	StatusOnHold              Status = "OnHold"
	StatusDelivered           Status = "Delivered"
	StatusFailed              Status = "Failed"
	StatusReturned            Status = "Returned"
	StatusInformationReceived Status = "InformationReceived"
)

// Coarse status bucket used by summary surfaces (dashboard counts).
// Detail surfaces keep the fine-grained Status; the two are separate
// named mappings so detail contexts never lose information.
type StatusBucket string

const (
	BucketProcessing StatusBucket = "Processing"
	BucketInTransit  StatusBucket = "InTransit"
	BucketOnHold     StatusBucket = "OnHold"
	BucketDelivered  StatusBucket = "Delivered"
)

// Single source of truth for raw-token classification. Keys are
// lower-cased with underscore separators; NormalizeStatus folds hyphens
// into underscores before the lookup.
var statusByToken = map[string]Status{
	"processing":           StatusProcessing,
	"pending":              StatusPending,
	"picked_up":            StatusPickedUp,
	"departed":             StatusDeparted,
	"arrived":              StatusArrived,
	"in_transit":           StatusInTransit,
	"on_hold":              StatusOnHold,
	"delivered":            StatusDelivered,
	"failed":               StatusFailed,
	"returned":             StatusReturned,
	"information_received": StatusInformationReceived,
}

// NormalizeStatus maps a free-form status token onto the canonical
// enumeration. Comparison is case-insensitive and tolerates both
// underscore and hyphen word separators ("In_transit" and "In-transit"
// are the same token). Unknown or empty input is absorbed into
// StatusProcessing rather than rejected: upstream carriers emit
// whatever they like, and a lookup miss is a classification default,
// not an error.
func NormalizeStatus(raw string) Status {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, "-", "_")

	if s, ok := statusByToken[token]; ok {
		return s
	}
	return StatusProcessing
}

// NormalizeStatusBucket collapses a free-form status token into the
// coarse bucket used by summary views. It shares the canonical lookup
// with NormalizeStatus and then folds: picked-up, departed and arrived
// count as in transit; failed counts as on hold; pending, returned and
// information-received count as processing.
func NormalizeStatusBucket(raw string) StatusBucket {
	switch NormalizeStatus(raw) {
	case StatusDelivered:
		return BucketDelivered
	case StatusInTransit, StatusPickedUp, StatusDeparted, StatusArrived:
		return BucketInTransit
	case StatusOnHold, StatusFailed:
		return BucketOnHold
	default:
		return BucketProcessing
	}
}
