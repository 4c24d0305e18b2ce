package model

import "fmt"

// Role is the closed set of roles a user can hold.  The zero value is not
// a valid role; use ParseRole to convert client-supplied strings so that
// unknown values are rejected at the boundary instead of leaking into
// comparisons downstream.
type Role string

const (
	RoleTourist Role = "tourist" // default role assigned on registration
	RoleGuide   Role = "guide"   // tour guide, may process assigned bookings
	RoleAdmin   Role = "admin"   // full administrative access
)

// ParseRole validates a raw role string against the allowed set.  It
// returns an error for any value outside {tourist, guide, admin}.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTourist, RoleGuide, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}
