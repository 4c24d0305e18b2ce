package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  Users are
// created on first registration (idempotent by email); the role is only
// ever changed through the admin role endpoint.
//
// Fields:
//  ID        – primary key identifier of the user.
//  Email     – unique email address, the identity carried in JWT claims.
//  Name      – display name supplied at registration.
//  Photo     – optional profile photo URL.
//  Role      – one of the closed Role set (tourist, guide, admin).
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type User struct {
	ID        uint64    `json:"id"`         // users.id
	Email     string    `json:"email"`      // users.email
	Name      string    `json:"name"`       // users.name
	Photo     string    `json:"photo"`      // users.photo
	Role      Role      `json:"role"`       // users.role
	CreatedAt time.Time `json:"created_at"` // users.created_at
	UpdatedAt time.Time `json:"updated_at"` // users.updated_at
}
