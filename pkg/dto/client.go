package dto

import (
	"time"

	"github.com/google/uuid"
)

// ClientCreate represents the data needed to create a new client record.
type ClientCreate struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Privileges  []string  `json:"privileges,omitempty"`
}

// ClientRead is a read-optimized view of a client.
type ClientRead struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Privileges  []string  `json:"privileges,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientSpec identifies the client an operation should act on: either an
// existing record by ID, or a profile to look up by email and create if absent.
type ClientSpec struct {
	ID      *uuid.UUID    `json:"id,omitempty"`
	Profile *ClientCreate `json:"profile,omitempty"`
}
