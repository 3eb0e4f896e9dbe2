package loan_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/arsbank/backoffice/internal/fixtures/mocks"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/service/auth"
	clientsvc "github.com/arsbank/backoffice/pkg/service/client"
	currencysvc "github.com/arsbank/backoffice/pkg/service/currency"
	"github.com/arsbank/backoffice/pkg/service/loan"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        *loan.Service
	loans      *mocks.LoanRepository
	accounts   *mocks.AccountRepository
	clients    *mocks.ClientRepository
	currencies *mocks.CurrencyRepository
	client     auth.Caller
	employee   auth.Caller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	f := &fixture{
		loans:      new(mocks.LoanRepository),
		accounts:   new(mocks.AccountRepository),
		clients:    new(mocks.ClientRepository),
		currencies: new(mocks.CurrencyRepository),
		client:     auth.Caller{Role: domain.RoleClient, SubjectID: uuid.New(), Email: "c@example.com"},
		employee:   auth.Caller{Role: domain.RoleEmployee, SubjectID: uuid.New(), Email: "e@bank.rs"},
	}
	f.svc = loan.New(
		f.loans,
		f.accounts,
		clientsvc.New(f.clients, logger),
		currencysvc.New(f.currencies, logger),
		logger,
	)
	return f
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	f := newFixture(t)
	acct := &dto.AccountRead{
		ID:            uuid.New(),
		AccountNumber: "444000000000012310",
		ClientID:      f.client.SubjectID,
	}
	f.accounts.On("GetByNumber", mock.Anything, acct.AccountNumber).Return(acct, nil)
	f.currencies.On("Get", mock.Anything, "EUR").
		Return(&dto.CurrencyRead{Code: "EUR", Active: true}, nil)

	var created dto.LoanRequestCreate
	f.loans.On("Create", mock.Anything, mock.AnythingOfType("dto.LoanRequestCreate")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(dto.LoanRequestCreate)
		}).
		Return(nil)

	got, err := f.svc.Submit(context.Background(), loan.SubmitCommand{
		AccountNumber:    acct.AccountNumber,
		Amount:           250000,
		Currency:         "EUR",
		Purpose:          "apartment renovation",
		MonthlyIncome:    2100,
		EmploymentStatus: "PERMANENT",
		TenorMonths:      60,
	}, f.client)
	require.NoError(t, err)

	assert.Equal(t, domain.LoanStatusPending, created.Status)
	assert.Equal(t, acct.ID, created.AccountID)
	assert.Equal(t, domain.LoanStatusPending, got.Status)
	assert.Equal(t, acct.AccountNumber, got.AccountNumber)
	assert.Equal(t, 250000.0, got.Amount)
}

func TestSubmit_RequiresClientRole(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Submit(context.Background(), loan.SubmitCommand{}, f.employee)
	require.ErrorIs(t, err, domain.ErrIncorrectCredentials)
}

func TestSubmit_AccountNotFound(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("GetByNumber", mock.Anything, "444000000000099910").
		Return(nil, domain.ErrNotFound)

	_, err := f.svc.Submit(context.Background(), loan.SubmitCommand{
		AccountNumber: "444000000000099910",
	}, f.client)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSubmit_OtherClientsAccountRejected(t *testing.T) {
	f := newFixture(t)
	acct := &dto.AccountRead{
		ID:            uuid.New(),
		AccountNumber: "444000000000012310",
		ClientID:      uuid.New(),
	}
	f.accounts.On("GetByNumber", mock.Anything, acct.AccountNumber).Return(acct, nil)
	f.clients.On("GetByEmail", mock.Anything, f.client.Email).
		Return(&dto.ClientRead{ID: uuid.New(), Email: f.client.Email}, nil)

	_, err := f.svc.Submit(context.Background(), loan.SubmitCommand{
		AccountNumber: acct.AccountNumber,
	}, f.client)
	require.ErrorIs(t, err, domain.ErrNotAccountOwner)
	f.loans.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_OwnerMatchedByEmailFallback(t *testing.T) {
	f := newFixture(t)
	rowID := uuid.New() // client row id differs from the token subject
	acct := &dto.AccountRead{
		ID:            uuid.New(),
		AccountNumber: "444000000000012310",
		ClientID:      rowID,
	}
	f.accounts.On("GetByNumber", mock.Anything, acct.AccountNumber).Return(acct, nil)
	f.clients.On("GetByEmail", mock.Anything, f.client.Email).
		Return(&dto.ClientRead{ID: rowID, Email: f.client.Email}, nil)
	f.currencies.On("Get", mock.Anything, "RSD").
		Return(&dto.CurrencyRead{Code: "RSD", Active: true}, nil)
	f.loans.On("Create", mock.Anything, mock.AnythingOfType("dto.LoanRequestCreate")).Return(nil)

	got, err := f.svc.Submit(context.Background(), loan.SubmitCommand{
		AccountNumber: acct.AccountNumber,
		Amount:        50000,
		Currency:      "RSD",
	}, f.client)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusPending, got.Status)
}

func TestSubmit_InvalidCurrency(t *testing.T) {
	f := newFixture(t)
	acct := &dto.AccountRead{
		ID:            uuid.New(),
		AccountNumber: "444000000000012310",
		ClientID:      f.client.SubjectID,
	}
	f.accounts.On("GetByNumber", mock.Anything, acct.AccountNumber).Return(acct, nil)
	f.currencies.On("Get", mock.Anything, "XYZ").Return(nil, domain.ErrNotFound)

	_, err := f.svc.Submit(context.Background(), loan.SubmitCommand{
		AccountNumber: acct.AccountNumber,
		Currency:      "XYZ",
	}, f.client)
	require.ErrorIs(t, err, domain.ErrInvalidCurrency)
	f.loans.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListPending_RequiresEmployeeRole(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListPending(context.Background(), f.client, dto.PageRequest{Page: 0, Size: 10})
	require.ErrorIs(t, err, domain.ErrIncorrectCredentials)
}

func TestListPending_RequiresPagination(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListPending(context.Background(), f.employee, dto.PageRequest{})
	require.ErrorIs(t, err, domain.ErrNullPageRequest)
}

func TestListPending_PassesThrough(t *testing.T) {
	f := newFixture(t)
	page := dto.PageRequest{Page: 1, Size: 5}
	want := &dto.Page[*dto.LoanRequestRead]{
		Items:      []*dto.LoanRequestRead{{Status: domain.LoanStatusPending}},
		Page:       1,
		Size:       5,
		TotalItems: 6,
	}
	f.loans.On("ListByStatus", mock.Anything, domain.LoanStatusPending, page).Return(want, nil)

	got, err := f.svc.ListPending(context.Background(), f.employee, page)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
