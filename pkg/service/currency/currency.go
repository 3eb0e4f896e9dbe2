package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/currency"
)

// Service is the currency catalog.
type Service struct {
	currencies repo.Repository
	logger     *slog.Logger
}

// New creates a currency catalog service.
func New(currencies repo.Repository, logger *slog.Logger) *Service {
	return &Service{currencies: currencies, logger: logger}
}

// Get validates a currency code against the catalog. Unknown and disabled
// codes both fail with domain.ErrInvalidCurrency.
func (s *Service) Get(ctx context.Context, code string) (*dto.CurrencyRead, error) {
	c, err := s.currencies.Get(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, code)
		}
		return nil, err
	}
	if !c.Active {
		return nil, fmt.Errorf("%w: %q is disabled", domain.ErrInvalidCurrency, code)
	}
	return c, nil
}

// List returns every catalog entry.
func (s *Service) List(ctx context.Context) ([]*dto.CurrencyRead, error) {
	return s.currencies.List(ctx)
}
