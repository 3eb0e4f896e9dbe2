package dto

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeRead is a read-optimized view of an employee.
type EmployeeRead struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Username   string    `json:"username"`
	Department string    `json:"department"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// CurrencyRead is a read-optimized view of a currency catalog entry.
type CurrencyRead struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Active   bool   `json:"active"`
}
