package employee

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/employee"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed employee repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Get implements employee.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeRead, error) {
	var e infra.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&e), nil
}

// GetByEmail implements employee.Repository.
func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.EmployeeRead, error) {
	var e infra.Employee
	if err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&e), nil
}

func mapModelToDTO(e *infra.Employee) *dto.EmployeeRead {
	return &dto.EmployeeRead{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Address:    e.Address,
		Username:   e.Username,
		Department: e.Department,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
	}
}
