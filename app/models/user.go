package models

import "time"

// User is a login identity, distinct from the staff/student record it
// is bound to. The username mirrors the bound person's national ID and
// is kept in sync on edits.
type User struct {
	ID        string    `json:"id" validate:"omitempty,uuid"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"-" validate:"required"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
