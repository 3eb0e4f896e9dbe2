package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a client record in the database.
type Client struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName   string    `gorm:"not null;size:100"`
	LastName    string    `gorm:"not null;size:100"`
	DateOfBirth time.Time
	Gender      string `gorm:"size:16"`
	Email       string `gorm:"uniqueIndex;not null;size:255"`
	Phone       string `gorm:"size:32"`
	Address     string `gorm:"size:255"`
	Privileges  string `gorm:"size:512"`
	Accounts    []Account
}

// Company represents a company record in the database.
type Company struct {
	gorm.Model
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null;size:255"`
	TIN     string    `gorm:"not null;size:20"`
	CRN     string    `gorm:"uniqueIndex;not null;size:20"`
	Address string    `gorm:"size:255"`
}

// Employee represents an employee record in the database.
type Employee struct {
	gorm.Model
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName  string    `gorm:"not null;size:100"`
	LastName   string    `gorm:"not null;size:100"`
	Email      string    `gorm:"uniqueIndex;not null;size:255"`
	Phone      string    `gorm:"size:32"`
	Address    string    `gorm:"size:255"`
	Username   string    `gorm:"uniqueIndex;not null;size:50"`
	Department string    `gorm:"size:100"`
	Active     bool      `gorm:"not null;default:true"`
}

// Currency represents a currency catalog entry.
type Currency struct {
	Code      string `gorm:"primaryKey;size:3"`
	Name      string `gorm:"not null;size:64"`
	Symbol    string `gorm:"size:8"`
	Decimals  int    `gorm:"not null;default:2"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account represents an account record in the database. The account number is
// system-generated and distinct from the primary key; its unique index is what
// the creation retry loop leans on.
type Account struct {
	gorm.Model
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountNumber    string    `gorm:"uniqueIndex;not null;size:18"`
	ClientID         uuid.UUID `gorm:"type:uuid;not null"`
	Client           Client
	CompanyID        *uuid.UUID `gorm:"type:uuid"`
	Company          *Company
	EmployeeID       uuid.UUID `gorm:"type:uuid;not null"`
	Employee         Employee
	CurrencyCode     string   `gorm:"not null;size:3"`
	Currency         Currency `gorm:"foreignKey:CurrencyCode;references:Code"`
	AccountType      string   `gorm:"not null;size:16;default:'STANDARD'"`
	AvailableBalance float64  `gorm:"type:numeric(20,2);not null;default:0"`
	DailyLimit       float64  `gorm:"type:numeric(20,2);not null;default:0"`
	MonthlyLimit     float64  `gorm:"type:numeric(20,2);not null;default:0"`
}

// Card represents a card record in the database.
type Card struct {
	gorm.Model
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CardNumber string    `gorm:"uniqueIndex;not null;size:16"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null"`
	Account    Account
	Status     string `gorm:"not null;size:16;default:'ACTIVATED'"`
}

// LoanRequest represents a pending or decided loan request.
type LoanRequest struct {
	gorm.Model
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID        uuid.UUID `gorm:"type:uuid;not null"`
	Account          Account
	Amount           float64 `gorm:"type:numeric(20,2);not null"`
	CurrencyCode     string  `gorm:"not null;size:3"`
	Purpose          string  `gorm:"size:255"`
	MonthlyIncome    float64 `gorm:"type:numeric(20,2)"`
	EmploymentStatus string  `gorm:"size:64"`
	TenorMonths      int
	Status           string `gorm:"not null;size:16;default:'PENDING'"`
}
