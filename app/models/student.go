package models

import "time"

// Guardian is a student's legal representative. Guardians have no login
// identity.
type Guardian struct {
	ID         string `json:"id"`
	NationalID string `json:"national_id" validate:"required,max=8"`
	Name       string `json:"name" validate:"required,max=50"`
	Phone      string `json:"phone" validate:"required,max=12"`
	Address    string `json:"address" validate:"required,max=100"`
}

type Student struct {
	ID         string    `json:"id"`
	NationalID string    `json:"national_id" validate:"required,max=8"`
	Name       string    `json:"name" validate:"required,max=50"`
	Phone      string    `json:"phone" validate:"required,max=12"`
	Address    string    `json:"address" validate:"required,max=100"`
	Email      *string   `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
	PhotoPath  *string   `json:"photo_path,omitempty"`
	GuardianID string    `json:"guardian_id" validate:"required,uuid"`
	Guardian   *Guardian `json:"guardian,omitempty"`
	UserID     string    `json:"user_id"`
	User       *User     `json:"user,omitempty"`
}
