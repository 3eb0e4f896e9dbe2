package client

import (
	"context"
	"strings"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/client"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed client repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements client.Repository.
func (r *repository) Create(ctx context.Context, create dto.ClientCreate) error {
	c := mapCreateDTOToModel(create)
	return infra.MapError(r.db.WithContext(ctx).Create(&c).Error)
}

// Get implements client.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error) {
	var c infra.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

// GetByEmail implements client.Repository.
func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error) {
	var c infra.Client
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

func mapCreateDTOToModel(create dto.ClientCreate) infra.Client {
	return infra.Client{
		ID:          create.ID,
		FirstName:   create.FirstName,
		LastName:    create.LastName,
		DateOfBirth: create.DateOfBirth,
		Gender:      create.Gender,
		Email:       create.Email,
		Phone:       create.Phone,
		Address:     create.Address,
		Privileges:  strings.Join(create.Privileges, ","),
	}
}

func mapModelToDTO(c *infra.Client) *dto.ClientRead {
	var privileges []string
	if c.Privileges != "" {
		privileges = strings.Split(c.Privileges, ",")
	}
	return &dto.ClientRead{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
		Gender:      c.Gender,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Privileges:  privileges,
		CreatedAt:   c.CreatedAt,
	}
}
