package dto

import (
	"time"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/google/uuid"
)

// AccountCreate is the persistence-facing DTO for opening a new account.
type AccountCreate struct {
	ID               uuid.UUID
	AccountNumber    string
	ClientID         uuid.UUID
	CompanyID        *uuid.UUID
	EmployeeID       uuid.UUID
	CurrencyCode     string
	AccountType      domain.AccountType
	AvailableBalance float64
	DailyLimit       float64
	MonthlyLimit     float64
}

// AccountRead is a read-optimized view of an account.
type AccountRead struct {
	ID               uuid.UUID          `json:"id"`
	AccountNumber    string             `json:"account_number"`
	ClientID         uuid.UUID          `json:"client_id"`
	CompanyID        *uuid.UUID         `json:"company_id,omitempty"`
	EmployeeID       uuid.UUID          `json:"employee_id"`
	CurrencyCode     string             `json:"currency"`
	AccountType      domain.AccountType `json:"account_type"`
	AvailableBalance float64            `json:"available_balance"`
	DailyLimit       float64            `json:"daily_limit"`
	MonthlyLimit     float64            `json:"monthly_limit"`
	CreatedAt        time.Time          `json:"created_at"`
}
