package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTrackingNumberPattern accepts any uppercase alphanumeric token
// of plausible length. The issuing system owns the real grammar; the
// pattern is configuration, not a hard-coded prefix convention.
const DefaultTrackingNumberPattern = `^[A-Z0-9-]{6,32}$`

// TrackingNumberPolicy validates externally supplied tracking numbers
// after coercion. Lookups always operate on the coerced form.
type TrackingNumberPolicy struct {
	pattern *regexp.Regexp
}

func NewTrackingNumberPolicy(pattern string) (*TrackingNumberPolicy, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultTrackingNumberPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("tracking number policy: compile pattern %q: %w", pattern, err)
	}

	return &TrackingNumberPolicy{pattern: re}, nil
}

// Coerce trims surrounding whitespace and upper-cases the token.
// Storage keys tracking numbers in this form.
func (p *TrackingNumberPolicy) Coerce(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Valid reports whether the coerced tracking number matches the
// configured grammar.
func (p *TrackingNumberPolicy) Valid(trackingNumber string) bool {
	return p.pattern.MatchString(trackingNumber)
}
