package currency

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/currency"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed currency catalog repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Get implements currency.Repository.
func (r *repository) Get(ctx context.Context, code string) (*dto.CurrencyRead, error) {
	var c infra.Currency
	if err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

// List implements currency.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.CurrencyRead, error) {
	var rows []infra.Currency
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, infra.MapError(err)
	}
	result := make([]*dto.CurrencyRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

func mapModelToDTO(c *infra.Currency) *dto.CurrencyRead {
	return &dto.CurrencyRead{
		Code:     c.Code,
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: c.Decimals,
		Active:   c.Active,
	}
}
