package account

import (
	"context"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for account records.
//
// Create returns domain.ErrAlreadyExists when the account number collides with
// an existing row; callers decide whether to regenerate and retry. Lookups
// return domain.ErrNotFound when no record matches.
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// GetByNumber retrieves an account by its account number.
	GetByNumber(ctx context.Context, accountNumber string) (*dto.AccountRead, error)

	// ListByClient retrieves all accounts owned by the given client.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error)
}
