package card

import (
	"context"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for card records.
//
// Create returns domain.ErrAlreadyExists on a card number collision. Lookups
// return domain.ErrNotFound when no record matches.
type Repository interface {
	// Create inserts a new card record from a DTO.
	Create(ctx context.Context, create dto.CardCreate) error

	// GetByNumber retrieves a card by its card number, with owner fields
	// populated from the owning account's client.
	GetByNumber(ctx context.Context, cardNumber string) (*dto.CardRead, error)

	// UpdateStatus sets the status of the card with the given ID.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error

	// ListByAccountNumber retrieves one page of cards attached to the account.
	ListByAccountNumber(
		ctx context.Context,
		accountNumber string,
		page dto.PageRequest,
	) (*dto.Page[*dto.CardRead], error)

	// Search retrieves one page of cards matching every non-zero filter field.
	Search(
		ctx context.Context,
		filter dto.CardFilter,
		page dto.PageRequest,
	) (*dto.Page[*dto.CardRead], error)
}
