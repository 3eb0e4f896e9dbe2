package client

import (
	"context"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for client records.
// Lookups return domain.ErrNotFound when no record matches.
type Repository interface {
	// Create inserts a new client record from a DTO.
	Create(ctx context.Context, create dto.ClientCreate) error

	// Get retrieves a client by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error)

	// GetByEmail retrieves a client by email as a read-optimized DTO.
	GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error)
}
