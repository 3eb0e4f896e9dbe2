package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	accountrepo "github.com/arsbank/backoffice/pkg/repository/account"
	repo "github.com/arsbank/backoffice/pkg/repository/loan"
	"github.com/arsbank/backoffice/pkg/service/auth"
	clientsvc "github.com/arsbank/backoffice/pkg/service/client"
	currencysvc "github.com/arsbank/backoffice/pkg/service/currency"
	"github.com/google/uuid"
)

// SubmitCommand carries a client's loan request.
type SubmitCommand struct {
	AccountNumber    string
	Amount           float64
	Currency         string
	Purpose          string
	MonthlyIncome    float64
	EmploymentStatus string
	TenorMonths      int
}

// Service is the loan desk: request intake from clients and the pending queue
// for employees.
type Service struct {
	loans      repo.Repository
	accounts   accountrepo.Repository
	clients    *clientsvc.Service
	currencies *currencysvc.Service
	logger     *slog.Logger
}

// New creates a loan desk service.
func New(
	loans repo.Repository,
	accounts accountrepo.Repository,
	clients *clientsvc.Service,
	currencies *currencysvc.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		loans:      loans,
		accounts:   accounts,
		clients:    clients,
		currencies: currencies,
		logger:     logger,
	}
}

// Submit files a PENDING loan request against one of the caller's accounts.
// The caller must be a client owning the account; the currency must be in the
// catalog.
func (s *Service) Submit(
	ctx context.Context,
	cmd SubmitCommand,
	caller auth.Caller,
) (*dto.LoanRequestRead, error) {
	log := s.logger.With("context", "loan.Submit")
	if !caller.IsClient() {
		return nil, fmt.Errorf("%w: client role required", domain.ErrIncorrectCredentials)
	}

	acct, err := s.accounts.GetByNumber(ctx, cmd.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, cmd.AccountNumber)
		}
		return nil, err
	}
	// Owner match by subject id, with the caller's client row as a fallback
	// when the token subject drifts from the row id. Same convention as card
	// transitions.
	if acct.ClientID != caller.SubjectID {
		client, cerr := s.clients.GetByEmail(ctx, caller.Email)
		if cerr != nil || client.ID != acct.ClientID {
			return nil, fmt.Errorf("%w: account %s", domain.ErrNotAccountOwner, cmd.AccountNumber)
		}
	}

	currency, err := s.currencies.Get(ctx, cmd.Currency)
	if err != nil {
		return nil, err
	}

	create := dto.LoanRequestCreate{
		ID:               uuid.New(),
		AccountID:        acct.ID,
		Amount:           cmd.Amount,
		CurrencyCode:     currency.Code,
		Purpose:          cmd.Purpose,
		MonthlyIncome:    cmd.MonthlyIncome,
		EmploymentStatus: cmd.EmploymentStatus,
		TenorMonths:      cmd.TenorMonths,
		Status:           domain.LoanStatusPending,
	}
	if err = s.loans.Create(ctx, create); err != nil {
		return nil, err
	}
	log.Info("loan request submitted",
		"loan_id", create.ID, "account_number", cmd.AccountNumber, "amount", cmd.Amount)

	return &dto.LoanRequestRead{
		ID:               create.ID,
		AccountNumber:    acct.AccountNumber,
		Amount:           create.Amount,
		CurrencyCode:     create.CurrencyCode,
		Purpose:          create.Purpose,
		MonthlyIncome:    create.MonthlyIncome,
		EmploymentStatus: create.EmploymentStatus,
		TenorMonths:      create.TenorMonths,
		Status:           create.Status,
	}, nil
}

// ListPending pages through the PENDING queue. Employee only; pagination is
// mandatory.
func (s *Service) ListPending(
	ctx context.Context,
	caller auth.Caller,
	page dto.PageRequest,
) (*dto.Page[*dto.LoanRequestRead], error) {
	if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: employee role required", domain.ErrIncorrectCredentials)
	}
	if !page.Valid() {
		return nil, domain.ErrNullPageRequest
	}
	return s.loans.ListByStatus(ctx, domain.LoanStatusPending, page)
}
