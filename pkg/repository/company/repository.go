package company

import (
	"context"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for company records.
// Lookups return domain.ErrNotFound when no record matches.
type Repository interface {
	// Create inserts a new company record from a DTO.
	Create(ctx context.Context, create dto.CompanyCreate) error

	// Get retrieves a company by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.CompanyRead, error)

	// GetByCRN retrieves a company by its registration number.
	GetByCRN(ctx context.Context, crn string) (*dto.CompanyRead, error)
}
