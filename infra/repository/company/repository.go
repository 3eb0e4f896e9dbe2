package company

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/company"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed company repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements company.Repository.
func (r *repository) Create(ctx context.Context, create dto.CompanyCreate) error {
	c := infra.Company{
		ID:      create.ID,
		Name:    create.Name,
		TIN:     create.TIN,
		CRN:     create.CRN,
		Address: create.Address,
	}
	return infra.MapError(r.db.WithContext(ctx).Create(&c).Error)
}

// Get implements company.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.CompanyRead, error) {
	var c infra.Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

// GetByCRN implements company.Repository.
func (r *repository) GetByCRN(ctx context.Context, crn string) (*dto.CompanyRead, error) {
	var c infra.Company
	if err := r.db.WithContext(ctx).First(&c, "crn = ?", crn).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

func mapModelToDTO(c *infra.Company) *dto.CompanyRead {
	return &dto.CompanyRead{
		ID:        c.ID,
		Name:      c.Name,
		TIN:       c.TIN,
		CRN:       c.CRN,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
