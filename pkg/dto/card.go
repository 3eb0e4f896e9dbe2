package dto

import (
	"time"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/google/uuid"
)

// CardCreate is the persistence-facing DTO for issuing a new card.
type CardCreate struct {
	ID         uuid.UUID
	CardNumber string
	AccountID  uuid.UUID
	Status     domain.CardStatus
}

// CardRead is a read-optimized view of a card. Owner fields are denormalized
// from the owning account's client so authorization checks need no extra round
// trip.
type CardRead struct {
	ID             uuid.UUID         `json:"id"`
	CardNumber     string            `json:"card_number"`
	AccountNumber  string            `json:"account_number"`
	Status         domain.CardStatus `json:"status"`
	OwnerClientID  uuid.UUID         `json:"-"`
	OwnerEmail     string            `json:"-"`
	OwnerFirstName string            `json:"owner_first_name,omitempty"`
	OwnerLastName  string            `json:"owner_last_name,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CardFilter holds the optional employee search criteria. Zero values mean
// "no constraint".
type CardFilter struct {
	CardNumber string
	FirstName  string
	LastName   string
	Email      string
	Status     domain.CardStatus
}
