package account

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed account repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository. A unique-index rejection on the
// account number surfaces as domain.ErrAlreadyExists.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return infra.MapError(r.db.WithContext(ctx).Create(&acct).Error)
}

// GetByNumber implements account.Repository.
func (r *repository) GetByNumber(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	var acct infra.Account
	if err := r.db.WithContext(ctx).
		First(&acct, "account_number = ?", accountNumber).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&acct), nil
}

// ListByClient implements account.Repository.
func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error) {
	var accts []infra.Account
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at").
		Find(&accts).Error; err != nil {
		return nil, infra.MapError(err)
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

func mapCreateDTOToModel(create dto.AccountCreate) infra.Account {
	return infra.Account{
		ID:               create.ID,
		AccountNumber:    create.AccountNumber,
		ClientID:         create.ClientID,
		CompanyID:        create.CompanyID,
		EmployeeID:       create.EmployeeID,
		CurrencyCode:     create.CurrencyCode,
		AccountType:      string(create.AccountType),
		AvailableBalance: create.AvailableBalance,
		DailyLimit:       create.DailyLimit,
		MonthlyLimit:     create.MonthlyLimit,
	}
}

func mapModelToDTO(acct *infra.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:               acct.ID,
		AccountNumber:    acct.AccountNumber,
		ClientID:         acct.ClientID,
		CompanyID:        acct.CompanyID,
		EmployeeID:       acct.EmployeeID,
		CurrencyCode:     acct.CurrencyCode,
		AccountType:      domain.AccountType(acct.AccountType),
		AvailableBalance: acct.AvailableBalance,
		DailyLimit:       acct.DailyLimit,
		MonthlyLimit:     acct.MonthlyLimit,
		CreatedAt:        acct.CreatedAt,
	}
}
