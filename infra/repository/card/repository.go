package card

import (
	"context"

	infra "github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/card"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed card repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements card.Repository. A unique-index rejection on the card
// number surfaces as domain.ErrAlreadyExists.
func (r *repository) Create(ctx context.Context, create dto.CardCreate) error {
	c := infra.Card{
		ID:         create.ID,
		CardNumber: create.CardNumber,
		AccountID:  create.AccountID,
		Status:     string(create.Status),
	}
	return infra.MapError(r.db.WithContext(ctx).Create(&c).Error)
}

// GetByNumber implements card.Repository.
func (r *repository) GetByNumber(ctx context.Context, cardNumber string) (*dto.CardRead, error) {
	var c infra.Card
	if err := r.db.WithContext(ctx).
		Preload("Account.Client").
		First(&c, "card_number = ?", cardNumber).Error; err != nil {
		return nil, infra.MapError(err)
	}
	return mapModelToDTO(&c), nil
}

// UpdateStatus implements card.Repository.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error {
	return infra.MapError(r.db.WithContext(ctx).
		Model(&infra.Card{}).
		Where("id = ?", id).
		Update("status", string(status)).Error)
}

// ListByAccountNumber implements card.Repository.
func (r *repository) ListByAccountNumber(
	ctx context.Context,
	accountNumber string,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	q := r.db.WithContext(ctx).
		Model(&infra.Card{}).
		Joins("JOIN accounts ON accounts.id = cards.account_id").
		Where("accounts.account_number = ?", accountNumber)
	return r.paginate(q, page)
}

// Search implements card.Repository. Every non-zero filter field narrows the
// result, ported from the original service's specification combinator.
func (r *repository) Search(
	ctx context.Context,
	filter dto.CardFilter,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	q := r.db.WithContext(ctx).
		Model(&infra.Card{}).
		Joins("JOIN accounts ON accounts.id = cards.account_id").
		Joins("JOIN clients ON clients.id = accounts.client_id")

	if filter.CardNumber != "" {
		q = q.Where("cards.card_number = ?", filter.CardNumber)
	}
	if filter.FirstName != "" {
		q = q.Where("clients.first_name ILIKE ?", filter.FirstName+"%")
	}
	if filter.LastName != "" {
		q = q.Where("clients.last_name ILIKE ?", filter.LastName+"%")
	}
	if filter.Email != "" {
		q = q.Where("clients.email = ?", filter.Email)
	}
	if filter.Status != "" {
		q = q.Where("cards.status = ?", string(filter.Status))
	}
	return r.paginate(q, page)
}

func (r *repository) paginate(q *gorm.DB, page dto.PageRequest) (*dto.Page[*dto.CardRead], error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, infra.MapError(err)
	}

	var rows []infra.Card
	if err := q.Preload("Account.Client").
		Order("cards.created_at").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error; err != nil {
		return nil, infra.MapError(err)
	}

	items := make([]*dto.CardRead, 0, len(rows))
	for i := range rows {
		items = append(items, mapModelToDTO(&rows[i]))
	}
	return &dto.Page[*dto.CardRead]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

func mapModelToDTO(c *infra.Card) *dto.CardRead {
	read := &dto.CardRead{
		ID:         c.ID,
		CardNumber: c.CardNumber,
		Status:     domain.CardStatus(c.Status),
		CreatedAt:  c.CreatedAt,
	}
	read.AccountNumber = c.Account.AccountNumber
	read.OwnerClientID = c.Account.Client.ID
	read.OwnerEmail = c.Account.Client.Email
	read.OwnerFirstName = c.Account.Client.FirstName
	read.OwnerLastName = c.Account.Client.LastName
	return read
}
