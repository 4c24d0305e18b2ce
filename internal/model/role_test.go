package model

import "testing"

func TestParseRoleAcceptsClosedSet(t *testing.T) {
	for _, s := range []string{"tourist", "guide", "admin"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("role %q should parse: %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("expected %q, got %q", s, role)
		}
	}
}

func TestParseRoleRejectsOutsideValues(t *testing.T) {
	for _, s := range []string{"superuser", "ADMIN", "", "owner"} {
		if _, err := ParseRole(s); err == nil {
			t.Fatalf("role %q must be rejected", s)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if BookingPending.Terminal() || BookingInReview.Terminal() {
		t.Fatalf("pending and in-review are not terminal")
	}
	if !BookingAccepted.Terminal() || !BookingRejected.Terminal() {
		t.Fatalf("accepted and rejected are terminal")
	}
}
