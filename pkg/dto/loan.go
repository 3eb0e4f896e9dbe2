package dto

import (
	"time"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/google/uuid"
)

// LoanRequestCreate is the persistence-facing DTO for submitting a loan request.
type LoanRequestCreate struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	Amount           float64
	CurrencyCode     string
	Purpose          string
	MonthlyIncome    float64
	EmploymentStatus string
	TenorMonths      int
	Status           domain.LoanStatus
}

// LoanRequestRead is a read-optimized view of a loan request.
type LoanRequestRead struct {
	ID               uuid.UUID         `json:"id"`
	AccountNumber    string            `json:"account_number"`
	Amount           float64           `json:"amount"`
	CurrencyCode     string            `json:"currency"`
	Purpose          string            `json:"purpose"`
	MonthlyIncome    float64           `json:"monthly_income"`
	EmploymentStatus string            `json:"employment_status"`
	TenorMonths      int               `json:"tenor_months"`
	Status           domain.LoanStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}
