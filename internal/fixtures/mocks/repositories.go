// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ClientRepository mocks client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Create(ctx context.Context, create dto.ClientCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.ClientRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*dto.ClientRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// CompanyRepository mocks company.Repository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, create dto.CompanyCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *CompanyRepository) Get(ctx context.Context, id uuid.UUID) (*dto.CompanyRead, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.CompanyRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyRepository) GetByCRN(ctx context.Context, crn string) (*dto.CompanyRead, error) {
	args := m.Called(ctx, crn)
	if v := args.Get(0); v != nil {
		return v.(*dto.CompanyRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// EmployeeRepository mocks employee.Repository.
type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeRead, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dto.EmployeeRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*dto.EmployeeRead, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*dto.EmployeeRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// CurrencyRepository mocks currency.Repository.
type CurrencyRepository struct {
	mock.Mock
}

func (m *CurrencyRepository) Get(ctx context.Context, code string) (*dto.CurrencyRead, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.(*dto.CurrencyRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CurrencyRepository) List(ctx context.Context) ([]*dto.CurrencyRead, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*dto.CurrencyRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// AccountRepository mocks account.Repository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *AccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	args := m.Called(ctx, accountNumber)
	if v := args.Get(0); v != nil {
		return v.(*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, clientID)
	if v := args.Get(0); v != nil {
		return v.([]*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// CardRepository mocks card.Repository.
type CardRepository struct {
	mock.Mock
}

func (m *CardRepository) Create(ctx context.Context, create dto.CardCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *CardRepository) GetByNumber(ctx context.Context, cardNumber string) (*dto.CardRead, error) {
	args := m.Called(ctx, cardNumber)
	if v := args.Get(0); v != nil {
		return v.(*dto.CardRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *CardRepository) ListByAccountNumber(
	ctx context.Context,
	accountNumber string,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	args := m.Called(ctx, accountNumber, page)
	if v := args.Get(0); v != nil {
		return v.(*dto.Page[*dto.CardRead]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CardRepository) Search(
	ctx context.Context,
	filter dto.CardFilter,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	args := m.Called(ctx, filter, page)
	if v := args.Get(0); v != nil {
		return v.(*dto.Page[*dto.CardRead]), args.Error(1)
	}
	return nil, args.Error(1)
}

// LoanRepository mocks loan.Repository.
type LoanRepository struct {
	mock.Mock
}

func (m *LoanRepository) Create(ctx context.Context, create dto.LoanRequestCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *LoanRepository) ListByStatus(
	ctx context.Context,
	status domain.LoanStatus,
	page dto.PageRequest,
) (*dto.Page[*dto.LoanRequestRead], error) {
	args := m.Called(ctx, status, page)
	if v := args.Get(0); v != nil {
		return v.(*dto.Page[*dto.LoanRequestRead]), args.Error(1)
	}
	return nil, args.Error(1)
}
