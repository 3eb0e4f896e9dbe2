package card

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
	accountrepo "github.com/arsbank/backoffice/pkg/repository/account"
	repo "github.com/arsbank/backoffice/pkg/repository/card"
	"github.com/arsbank/backoffice/pkg/service/auth"
	clientsvc "github.com/arsbank/backoffice/pkg/service/client"
	"github.com/google/uuid"
)

// defaultPageSize applies to client card search when the caller sends no
// pagination parameters.
const defaultPageSize = 20

// Service is the card registry: role-gated status transitions and the two
// search variants.
type Service struct {
	cards    repo.Repository
	accounts accountrepo.Repository
	clients  *clientsvc.Service
	cfg      config.Numbering
	logger   *slog.Logger
}

// New creates a card registry service.
func New(
	cards repo.Repository,
	accounts accountrepo.Repository,
	clients *clientsvc.Service,
	cfg config.Numbering,
	logger *slog.Logger,
) *Service {
	return &Service{
		cards:    cards,
		accounts: accounts,
		clients:  clients,
		cfg:      cfg,
		logger:   logger,
	}
}

// Block transitions a card to BLOCKED. The caller must be the owning client
// (matched by id or email) or an employee. Already blocked or deactivated
// cards are left untouched and returned as-is.
func (s *Service) Block(
	ctx context.Context,
	cardNumber string,
	caller auth.Caller,
) (*dto.CardRead, error) {
	card, err := s.getCard(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if caller.IsClient() {
		if card.OwnerClientID != caller.SubjectID && card.OwnerEmail != caller.Email {
			return nil, fmt.Errorf("%w: card %s", domain.ErrNotAccountOwner, cardNumber)
		}
	} else if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: client or employee role required", domain.ErrIncorrectCredentials)
	}

	if card.Status == domain.CardStatusBlocked || card.Status == domain.CardStatusDeactivated {
		return card, nil
	}
	return s.transition(ctx, card, domain.CardStatusBlocked)
}

// Unblock transitions a BLOCKED card back to ACTIVATED. Employee only. Cards
// in any other status are left untouched and returned as-is.
func (s *Service) Unblock(
	ctx context.Context,
	cardNumber string,
	caller auth.Caller,
) (*dto.CardRead, error) {
	if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: employee role required", domain.ErrIncorrectCredentials)
	}
	card, err := s.getCard(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if card.Status != domain.CardStatusBlocked {
		return card, nil
	}
	return s.transition(ctx, card, domain.CardStatusActivated)
}

// Deactivate transitions a card to its terminal DEACTIVATED status. Employee
// only. Deactivating an already deactivated card fails with
// domain.ErrCardDeactivated.
func (s *Service) Deactivate(
	ctx context.Context,
	cardNumber string,
	caller auth.Caller,
) (*dto.CardRead, error) {
	if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: employee role required", domain.ErrIncorrectCredentials)
	}
	card, err := s.getCard(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if card.Status == domain.CardStatusDeactivated {
		return nil, fmt.Errorf("%w: card %s", domain.ErrCardDeactivated, cardNumber)
	}
	return s.transition(ctx, card, domain.CardStatusDeactivated)
}

// ClientSearch lists the cards on one of the caller's own accounts. The caller
// must be a client and must own the queried account.
func (s *Service) ClientSearch(
	ctx context.Context,
	caller auth.Caller,
	accountNumber string,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	if !caller.IsClient() {
		return nil, fmt.Errorf("%w: client role required", domain.ErrIncorrectCredentials)
	}
	client, err := s.clients.GetByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}

	acct, err := s.accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", domain.ErrNotAccountOwner, accountNumber)
		}
		return nil, err
	}
	if acct.ClientID != client.ID {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotAccountOwner, accountNumber)
	}

	if !page.Valid() {
		page = dto.PageRequest{Page: 0, Size: defaultPageSize}
	}
	return s.cards.ListByAccountNumber(ctx, accountNumber, page)
}

// EmployeeSearch lists cards matching any combination of card number, owner
// first/last name, owner email, and status. Employee only; pagination is
// mandatory.
func (s *Service) EmployeeSearch(
	ctx context.Context,
	caller auth.Caller,
	filter dto.CardFilter,
	page dto.PageRequest,
) (*dto.Page[*dto.CardRead], error) {
	if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: employee role required", domain.ErrIncorrectCredentials)
	}
	if !page.Valid() {
		return nil, domain.ErrNullPageRequest
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown card status %q", domain.ErrValidation, filter.Status)
	}
	return s.cards.Search(ctx, filter, page)
}

// Issue creates a new ACTIVATED card on an account. Employee only. Card number
// collisions follow the same bounded regenerate-and-retry discipline as
// account numbers.
func (s *Service) Issue(
	ctx context.Context,
	accountNumber string,
	caller auth.Caller,
) (*dto.CardRead, error) {
	log := s.logger.With("context", "card.Issue")
	if !caller.IsEmployee() {
		return nil, fmt.Errorf("%w: employee role required", domain.ErrIncorrectCredentials)
	}
	acct, err := s.accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
		}
		return nil, err
	}

	for attempt := 1; attempt <= s.maxRetries(); attempt++ {
		create := dto.CardCreate{
			ID:         uuid.New(),
			CardNumber: numbers.NewCardNumber(),
			AccountID:  acct.ID,
			Status:     domain.CardStatusActivated,
		}
		err = s.cards.Create(ctx, create)
		if err == nil {
			log.Info("card issued", "card_number", create.CardNumber, "account_number", accountNumber)
			// Committed; answer from the create data if the re-fetch hiccups.
			card, getErr := s.cards.GetByNumber(ctx, create.CardNumber)
			if getErr != nil {
				log.Warn("confirmation lookup failed, answering from create data",
					"card_number", create.CardNumber, "error", getErr)
				return issuedCard(create, acct), nil
			}
			return card, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		log.Warn("card number collision, regenerating", "attempt", attempt)
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrNumberExhausted, s.maxRetries())
}

func issuedCard(create dto.CardCreate, acct *dto.AccountRead) *dto.CardRead {
	return &dto.CardRead{
		ID:            create.ID,
		CardNumber:    create.CardNumber,
		AccountNumber: acct.AccountNumber,
		Status:        create.Status,
		OwnerClientID: acct.ClientID,
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *Service) getCard(ctx context.Context, cardNumber string) (*dto.CardRead, error) {
	card, err := s.cards.GetByNumber(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCardNotFound, cardNumber)
		}
		return nil, err
	}
	return card, nil
}

func (s *Service) transition(
	ctx context.Context,
	card *dto.CardRead,
	to domain.CardStatus,
) (*dto.CardRead, error) {
	if err := s.cards.UpdateStatus(ctx, card.ID, to); err != nil {
		return nil, err
	}
	s.logger.Info("card status changed",
		"card_number", card.CardNumber, "from", card.Status, "to", to)
	card.Status = to
	return card, nil
}

func (s *Service) maxRetries() int {
	if s.cfg.MaxRetries > 0 {
		return s.cfg.MaxRetries
	}
	return 5
}
