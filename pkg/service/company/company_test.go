package company_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/arsbank/backoffice/internal/fixtures/mocks"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/service/company"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*company.Service, *mocks.CompanyRepository) {
	t.Helper()
	repo := new(mocks.CompanyRepository)
	return company.New(repo, slog.Default()), repo
}

func TestResolve_ByIDAbsentIsNotFound(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, _, err := svc.Resolve(context.Background(), dto.CompanySpec{ID: &id})
	require.ErrorIs(t, err, domain.ErrCompanyNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolve_ByCRNReturnsExisting(t *testing.T) {
	svc, repo := newService(t)
	want := &dto.CompanyRead{ID: uuid.New(), CRN: "17522525"}
	repo.On("GetByCRN", mock.Anything, "17522525").Return(want, nil)

	got, outcome, err := svc.Resolve(context.Background(), dto.CompanySpec{
		Profile: &dto.CompanyCreate{CRN: "17522525", Name: "Arse d.o.o."},
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, domain.ResolvedExisting, outcome)
}

func TestResolve_CreatesWhenCRNUnknown(t *testing.T) {
	svc, repo := newService(t)
	profile := dto.CompanyCreate{CRN: "17522525", Name: "Arse d.o.o.", TIN: "123456789"}
	repo.On("GetByCRN", mock.Anything, profile.CRN).Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("dto.CompanyCreate")).
		Run(func(args mock.Arguments) {
			create := args.Get(1).(dto.CompanyCreate)
			assert.Equal(t, profile.CRN, create.CRN)
			assert.NotEqual(t, uuid.Nil, create.ID)
		}).
		Return(nil)
	repo.On("Get", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&dto.CompanyRead{CRN: profile.CRN}, nil)

	got, outcome, err := svc.Resolve(context.Background(), dto.CompanySpec{Profile: &profile})
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedCreated, outcome)
	assert.Equal(t, profile.CRN, got.CRN)
}
