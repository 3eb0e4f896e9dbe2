package loan

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/loan"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed loan request repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements loan.Repository.
func (r *repository) Create(ctx context.Context, create dto.LoanRequestCreate) error {
	lr := infra.LoanRequest{
		ID:               create.ID,
		AccountID:        create.AccountID,
		Amount:           create.Amount,
		CurrencyCode:     create.CurrencyCode,
		Purpose:          create.Purpose,
		MonthlyIncome:    create.MonthlyIncome,
		EmploymentStatus: create.EmploymentStatus,
		TenorMonths:      create.TenorMonths,
		Status:           string(create.Status),
	}
	return infra.MapError(r.db.WithContext(ctx).Create(&lr).Error)
}

// ListByStatus implements loan.Repository.
func (r *repository) ListByStatus(
	ctx context.Context,
	status domain.LoanStatus,
	page dto.PageRequest,
) (*dto.Page[*dto.LoanRequestRead], error) {
	q := r.db.WithContext(ctx).
		Model(&infra.LoanRequest{}).
		Where("loan_requests.status = ?", string(status))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, infra.MapError(err)
	}

	var rows []infra.LoanRequest
	if err := q.Preload("Account").
		Order("loan_requests.created_at").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error; err != nil {
		return nil, infra.MapError(err)
	}

	items := make([]*dto.LoanRequestRead, 0, len(rows))
	for i := range rows {
		items = append(items, mapModelToDTO(&rows[i]))
	}
	return &dto.Page[*dto.LoanRequestRead]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

func mapModelToDTO(lr *infra.LoanRequest) *dto.LoanRequestRead {
	return &dto.LoanRequestRead{
		ID:               lr.ID,
		AccountNumber:    lr.Account.AccountNumber,
		Amount:           lr.Amount,
		CurrencyCode:     lr.CurrencyCode,
		Purpose:          lr.Purpose,
		MonthlyIncome:    lr.MonthlyIncome,
		EmploymentStatus: lr.EmploymentStatus,
		TenorMonths:      lr.TenorMonths,
		Status:           domain.LoanStatus(lr.Status),
		CreatedAt:        lr.CreatedAt,
	}
}
