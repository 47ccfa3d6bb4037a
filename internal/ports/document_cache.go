package ports

import (
	"context"
	"fmt"
	"time"
)

// Port: an optional cache for rendered documents. Keys encode the
// tracking number plus a freshness component (latest event timestamp)
// so a stale entry can never shadow new tracking data. Generation is
// idempotent, so a miss or cache failure only costs a re-render.
type DocumentCache interface {
	// Return the cached document bytes, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Store document bytes under key for the given TTL.
	Put(ctx context.Context, key string, doc []byte, ttl time.Duration) error
}

// DocumentCacheKey builds the cache key for one rendered airway bill.
// lastEventAt is the zero time when the shipment has no events yet.
func DocumentCacheKey(trackingNumber string, lastEventAt time.Time) string {
	return fmt.Sprintf("awb:%s:%d", trackingNumber, lastEventAt.Unix())
}
