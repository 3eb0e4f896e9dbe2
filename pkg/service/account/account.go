package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/numbers"
	repo "github.com/arsbank/backoffice/pkg/repository/account"
	"github.com/arsbank/backoffice/pkg/service/auth"
	clientsvc "github.com/arsbank/backoffice/pkg/service/client"
	companysvc "github.com/arsbank/backoffice/pkg/service/company"
	currencysvc "github.com/arsbank/backoffice/pkg/service/currency"
	employeesvc "github.com/arsbank/backoffice/pkg/service/employee"
	"github.com/google/uuid"
)

// OpenCommand carries everything needed to open an account: the client to
// resolve or create, an optional company for business accounts, the initial
// balance, and the currency code.
type OpenCommand struct {
	Client   dto.ClientSpec
	Company  *dto.CompanySpec
	Balance  float64
	Currency string
}

// Service is the account ledger. It orchestrates the registries and owns the
// insert-and-retry discipline around account number uniqueness.
type Service struct {
	accounts   repo.Repository
	clients    *clientsvc.Service
	companies  *companysvc.Service
	employees  *employeesvc.Service
	currencies *currencysvc.Service
	cfg        config.Numbering
	logger     *slog.Logger
}

// New creates an account ledger service.
func New(
	accounts repo.Repository,
	clients *clientsvc.Service,
	companies *companysvc.Service,
	employees *employeesvc.Service,
	currencies *currencysvc.Service,
	cfg config.Numbering,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts:   accounts,
		clients:    clients,
		companies:  companies,
		employees:  employees,
		currencies: currencies,
		cfg:        cfg,
		logger:     logger,
	}
}

// Open runs the account creation workflow: resolve the client, resolve the
// company when one is supplied, validate the currency, resolve the acting
// employee, then persist an account with a generated number. A new account
// always starts as STANDARD with zero daily and monthly limits.
//
// Two concurrent openings may pick the same candidate number; the unique index
// rejects the loser, which retries with a fresh number up to the configured
// bound before failing with domain.ErrNumberExhausted.
func (s *Service) Open(
	ctx context.Context,
	cmd OpenCommand,
	caller auth.Caller,
) (*dto.AccountRead, error) {
	log := s.logger.With("context", "account.Open")

	client, outcome, err := s.clients.Resolve(ctx, cmd.Client)
	if err != nil {
		return nil, err
	}
	log.Debug("client resolved", "client_id", client.ID, "outcome", outcome)

	var companyID *uuid.UUID
	if cmd.Company != nil {
		company, companyOutcome, err := s.companies.Resolve(ctx, *cmd.Company)
		if err != nil {
			return nil, err
		}
		log.Debug("company resolved", "company_id", company.ID, "outcome", companyOutcome)
		companyID = &company.ID
	}

	currency, err := s.currencies.Get(ctx, cmd.Currency)
	if err != nil {
		return nil, err
	}

	employee, err := s.employees.Me(ctx, caller)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.maxRetries(); attempt++ {
		create := dto.AccountCreate{
			ID:               uuid.New(),
			AccountNumber:    numbers.NewAccountNumber(),
			ClientID:         client.ID,
			CompanyID:        companyID,
			EmployeeID:       employee.ID,
			CurrencyCode:     currency.Code,
			AccountType:      domain.AccountTypeStandard,
			AvailableBalance: cmd.Balance,
			DailyLimit:       0,
			MonthlyLimit:     0,
		}
		err = s.accounts.Create(ctx, create)
		if err == nil {
			log.Info("account opened",
				"account_number", create.AccountNumber,
				"client_id", client.ID,
				"employee_id", employee.ID,
				"currency", currency.Code,
			)
			// The row is committed at this point; the confirmation re-fetch
			// is best-effort and a read hiccup must not fail the open.
			acct, getErr := s.accounts.GetByNumber(ctx, create.AccountNumber)
			if getErr != nil {
				log.Warn("confirmation lookup failed, answering from create data",
					"account_number", create.AccountNumber, "error", getErr)
				return openedAccount(create), nil
			}
			return acct, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		log.Warn("account number collision, regenerating",
			"account_number", create.AccountNumber, "attempt", attempt)
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrNumberExhausted, s.maxRetries())
}

// Get retrieves an account by number, failing with domain.ErrAccountNotFound.
func (s *Service) Get(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	acct, err := s.accounts.GetByNumber(ctx, accountNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
	}
	return acct, err
}

// ListForCaller returns the accounts owned by the calling client.
func (s *Service) ListForCaller(ctx context.Context, caller auth.Caller) ([]*dto.AccountRead, error) {
	if !caller.IsClient() {
		return nil, fmt.Errorf("%w: client role required", domain.ErrIncorrectCredentials)
	}
	client, err := s.clients.GetByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}
	return s.accounts.ListByClient(ctx, client.ID)
}

func openedAccount(create dto.AccountCreate) *dto.AccountRead {
	return &dto.AccountRead{
		ID:               create.ID,
		AccountNumber:    create.AccountNumber,
		ClientID:         create.ClientID,
		CompanyID:        create.CompanyID,
		EmployeeID:       create.EmployeeID,
		CurrencyCode:     create.CurrencyCode,
		AccountType:      create.AccountType,
		AvailableBalance: create.AvailableBalance,
		DailyLimit:       create.DailyLimit,
		MonthlyLimit:     create.MonthlyLimit,
		CreatedAt:        time.Now().UTC(),
	}
}

func (s *Service) maxRetries() int {
	if s.cfg.MaxRetries > 0 {
		return s.cfg.MaxRetries
	}
	return 5
}
