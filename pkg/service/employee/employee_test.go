package employee_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/arsbank/backoffice/internal/fixtures/mocks"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/service/auth"
	"github.com/arsbank/backoffice/pkg/service/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*employee.Service, *mocks.EmployeeRepository) {
	t.Helper()
	repo := new(mocks.EmployeeRepository)
	return employee.New(repo, slog.Default()), repo
}

func TestMe_BySubjectID(t *testing.T) {
	svc, repo := newService(t)
	caller := auth.Caller{Role: domain.RoleEmployee, SubjectID: uuid.New(), Email: "e@bank.rs"}
	want := &dto.EmployeeRead{ID: caller.SubjectID, Active: true}
	repo.On("Get", mock.Anything, caller.SubjectID).Return(want, nil)

	got, err := svc.Me(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestMe_FallsBackToEmail(t *testing.T) {
	svc, repo := newService(t)
	caller := auth.Caller{Role: domain.RoleEmployee, SubjectID: uuid.New(), Email: "e@bank.rs"}
	want := &dto.EmployeeRead{ID: uuid.New(), Email: caller.Email, Active: true}
	repo.On("Get", mock.Anything, caller.SubjectID).Return(nil, domain.ErrNotFound)
	repo.On("GetByEmail", mock.Anything, caller.Email).Return(want, nil)

	got, err := svc.Me(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMe_AbsentEverywhere(t *testing.T) {
	svc, repo := newService(t)
	caller := auth.Caller{Role: domain.RoleEmployee, SubjectID: uuid.New(), Email: "e@bank.rs"}
	repo.On("Get", mock.Anything, caller.SubjectID).Return(nil, domain.ErrNotFound)
	repo.On("GetByEmail", mock.Anything, caller.Email).Return(nil, domain.ErrNotFound)

	_, err := svc.Me(context.Background(), caller)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestMe_InactiveRejected(t *testing.T) {
	svc, repo := newService(t)
	caller := auth.Caller{Role: domain.RoleEmployee, SubjectID: uuid.New(), Email: "e@bank.rs"}
	repo.On("Get", mock.Anything, caller.SubjectID).
		Return(&dto.EmployeeRead{ID: caller.SubjectID, Active: false}, nil)

	_, err := svc.Me(context.Background(), caller)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
