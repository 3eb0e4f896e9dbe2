package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/company"
	"github.com/google/uuid"
)

// Service is the company registry: find-or-create resolution keyed by the
// company registration number.
type Service struct {
	companies repo.Repository
	logger    *slog.Logger
}

// New creates a company registry service.
func New(companies repo.Repository, logger *slog.Logger) *Service {
	return &Service{companies: companies, logger: logger}
}

// Resolve resolves the spec to a company record. A supplied ID is lookup-only
// and an absent record fails with domain.ErrCompanyNotFound; otherwise the CRN
// is looked up and a new company created when no record matches.
func (s *Service) Resolve(
	ctx context.Context,
	spec dto.CompanySpec,
) (*dto.CompanyRead, domain.ResolveOutcome, error) {
	log := s.logger.With("context", "company.Resolve")

	if spec.ID != nil {
		c, err := s.companies.Get(ctx, *spec.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: id %s", domain.ErrCompanyNotFound, *spec.ID)
			}
			return nil, "", err
		}
		return c, domain.ResolvedExisting, nil
	}

	if spec.Profile == nil {
		return nil, "", fmt.Errorf("%w: no id or profile supplied", domain.ErrCompanyNotFound)
	}

	existing, err := s.companies.GetByCRN(ctx, spec.Profile.CRN)
	if err == nil {
		return existing, domain.ResolvedExisting, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	create := *spec.Profile
	create.ID = uuid.New()
	if err = s.companies.Create(ctx, create); err != nil {
		return nil, "", err
	}
	log.Info("created new company", "company_id", create.ID, "crn", create.CRN)

	created, err := s.companies.Get(ctx, create.ID)
	if err != nil {
		return nil, "", err
	}
	return created, domain.ResolvedCreated, nil
}
