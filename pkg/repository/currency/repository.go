package currency

import (
	"context"

	"github.com/arsbank/backoffice/pkg/dto"
)

// Repository defines read access to the currency catalog.
// Get returns domain.ErrNotFound when the code has no catalog entry.
type Repository interface {
	// Get retrieves a currency by its code.
	Get(ctx context.Context, code string) (*dto.CurrencyRead, error)

	// List retrieves all catalog entries.
	List(ctx context.Context) ([]*dto.CurrencyRead, error)
}
