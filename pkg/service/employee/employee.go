package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	repo "github.com/arsbank/backoffice/pkg/repository/employee"
	"github.com/arsbank/backoffice/pkg/service/auth"
)

// Service is the employee directory.
type Service struct {
	employees repo.Repository
	logger    *slog.Logger
}

// New creates an employee directory service.
func New(employees repo.Repository, logger *slog.Logger) *Service {
	return &Service{employees: employees, logger: logger}
}

// Me resolves the acting employee behind the caller identity, by subject id
// first and email as a fallback. An absent or inactive record fails with
// domain.ErrEmployeeNotFound.
func (s *Service) Me(ctx context.Context, caller auth.Caller) (*dto.EmployeeRead, error) {
	e, err := s.employees.Get(ctx, caller.SubjectID)
	if errors.Is(err, domain.ErrNotFound) {
		e, err = s.employees.GetByEmail(ctx, caller.Email)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: subject %s", domain.ErrEmployeeNotFound, caller.SubjectID)
		}
		return nil, err
	}
	if !e.Active {
		return nil, fmt.Errorf("%w: employee %s is inactive", domain.ErrEmployeeNotFound, e.ID)
	}
	return e, nil
}
