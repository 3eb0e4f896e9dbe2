package loan

import (
	"context"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
)

// Repository defines data access for loan requests.
type Repository interface {
	// Create inserts a new loan request from a DTO.
	Create(ctx context.Context, create dto.LoanRequestCreate) error

	// ListByStatus retrieves one page of loan requests in the given status.
	ListByStatus(
		ctx context.Context,
		status domain.LoanStatus,
		page dto.PageRequest,
	) (*dto.Page[*dto.LoanRequestRead], error)
}
