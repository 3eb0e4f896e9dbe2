package employee

import (
	"context"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines read access to the employee directory.
// Lookups return domain.ErrNotFound when no record matches.
type Repository interface {
	// Get retrieves an employee by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeRead, error)

	// GetByEmail retrieves an employee by email as a read-optimized DTO.
	GetByEmail(ctx context.Context, email string) (*dto.EmployeeRead, error)
}
