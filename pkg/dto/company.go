package dto

import (
	"time"

	"github.com/google/uuid"
)

// CompanyCreate represents the data needed to create a new company record.
type CompanyCreate struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name" validate:"required,max=255"`
	TIN     string    `json:"tin" validate:"required,max=20"`
	CRN     string    `json:"crn" validate:"required,max=20"`
	Address string    `json:"address,omitempty"`
}

// CompanyRead is a read-optimized view of a company.
type CompanyRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TIN       string    `json:"tin"`
	CRN       string    `json:"crn"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanySpec identifies the company an operation should act on, keyed by
// company registration number when no ID is supplied.
type CompanySpec struct {
	ID      *uuid.UUID     `json:"id,omitempty"`
	Profile *CompanyCreate `json:"profile,omitempty"`
}
