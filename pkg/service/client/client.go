package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/client"
	"github.com/google/uuid"
)

// Service is the client registry: find-or-create resolution keyed by email,
// plus plain lookups.
type Service struct {
	clients repo.Repository
	logger  *slog.Logger
}

// New creates a client registry service.
func New(clients repo.Repository, logger *slog.Logger) *Service {
	return &Service{clients: clients, logger: logger}
}

// Resolve resolves the spec to a client record.
//
// A supplied ID wins and is lookup-only: an absent record fails with
// domain.ErrClientNotFound. Otherwise the profile email is looked up and an
// existing client reused; when none matches, a new client is created from the
// profile. The outcome tags which path was taken.
func (s *Service) Resolve(
	ctx context.Context,
	spec dto.ClientSpec,
) (*dto.ClientRead, domain.ResolveOutcome, error) {
	log := s.logger.With("context", "client.Resolve")

	if spec.ID != nil {
		c, err := s.clients.Get(ctx, *spec.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: id %s", domain.ErrClientNotFound, *spec.ID)
			}
			return nil, "", err
		}
		return c, domain.ResolvedExisting, nil
	}

	if spec.Profile == nil {
		return nil, "", fmt.Errorf("%w: no id or profile supplied", domain.ErrClientNotFound)
	}

	existing, err := s.clients.GetByEmail(ctx, spec.Profile.Email)
	if err == nil {
		return existing, domain.ResolvedExisting, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	create := *spec.Profile
	create.ID = uuid.New()
	if err = s.clients.Create(ctx, create); err != nil {
		return nil, "", err
	}
	log.Info("created new client", "client_id", create.ID, "email", create.Email)

	created, err := s.clients.Get(ctx, create.ID)
	if err != nil {
		return nil, "", err
	}
	return created, domain.ResolvedCreated, nil
}

// Get retrieves a client by ID, failing with domain.ErrClientNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.ClientRead, error) {
	c, err := s.clients.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %s", domain.ErrClientNotFound, id)
	}
	return c, err
}

// GetByEmail retrieves a client by email, failing with domain.ErrClientNotFound.
func (s *Service) GetByEmail(ctx context.Context, email string) (*dto.ClientRead, error) {
	c, err := s.clients.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: email %s", domain.ErrClientNotFound, email)
	}
	return c, err
}
