package domain

import "testing"

func TestNormalizeStatusSeparatorAndCaseVariants(t *testing.T) {
	variants := []string{
		"in_transit",
		"in-transit",
		"IN_TRANSIT",
		"In-Transit",
		"In_Transit",
		"  in_transit  ",
	}

	for _, v := range variants {
		if got := NormalizeStatus(v); got != StatusInTransit {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", v, got, StatusInTransit)
		}
	}
}

func TestNormalizeStatusKnownTokens(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"delivered", StatusDelivered},
		{"Picked_up", StatusPickedUp},
		{"DEPARTED", StatusDeparted},
		{"arrived", StatusArrived},
		{"on_hold", StatusOnHold},
		{"On-Hold", StatusOnHold},
		{"failed", StatusFailed},
		{"returned", StatusReturned},
		{"pending", StatusPending},
		{"information_received", StatusInformationReceived},
		{"Information-Received", StatusInformationReceived},
		{"processing", StatusProcessing},
	}

	for _, c := range cases {
		if got := NormalizeStatus(c.raw); got != c.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeStatusUnknownDefaultsToProcessing(t *testing.T) {
	for _, raw := range []string{"", "   ", "teleported", "out_for_delivery?x", "IN TRANSIT NOW"} {
		if got := NormalizeStatus(raw); got != StatusProcessing {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, StatusProcessing)
		}
	}
}

func TestNormalizeStatusBucket(t *testing.T) {
	cases := []struct {
		raw  string
		want StatusBucket
	}{
		{"delivered", BucketDelivered},
		{"in_transit", BucketInTransit},
		{"in-transit", BucketInTransit},
		{"picked_up", BucketInTransit},
		{"departed", BucketInTransit},
		{"arrived", BucketInTransit},
		{"on_hold", BucketOnHold},
		{"failed", BucketOnHold},
		{"information_received", BucketProcessing},
		{"pending", BucketProcessing},
		{"returned", BucketProcessing},
		{"", BucketProcessing},
		{"nonsense", BucketProcessing},
	}

	for _, c := range cases {
		if got := NormalizeStatusBucket(c.raw); got != c.want {
			t.Errorf("NormalizeStatusBucket(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestTrackingNumberPolicy(t *testing.T) {
	policy, err := NewTrackingNumberPolicy("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := policy.Coerce("  awb-test001 "); got != "AWB-TEST001" {
		t.Fatalf("Coerce = %q, want %q", got, "AWB-TEST001")
	}

	if !policy.Valid("AWB-TEST001") {
		t.Errorf("expected AWB-TEST001 to be valid")
	}
	if policy.Valid("ab") {
		t.Errorf("expected short token to be invalid")
	}
	if policy.Valid("AWB TEST001") {
		t.Errorf("expected token with space to be invalid")
	}

	if _, err := NewTrackingNumberPolicy("(unclosed"); err == nil {
		t.Errorf("expected error for malformed pattern")
	}
}
