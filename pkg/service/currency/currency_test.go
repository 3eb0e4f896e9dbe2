package currency_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/arsbank/backoffice/internal/fixtures/mocks"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/service/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*currency.Service, *mocks.CurrencyRepository) {
	t.Helper()
	repo := new(mocks.CurrencyRepository)
	return currency.New(repo, slog.Default()), repo
}

func TestGet_Active(t *testing.T) {
	svc, repo := newService(t)
	want := &dto.CurrencyRead{Code: "RSD", Name: "Serbian Dinar", Active: true}
	repo.On("Get", mock.Anything, "RSD").Return(want, nil)

	got, err := svc.Get(context.Background(), "RSD")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_UnknownCode(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Get", mock.Anything, "XYZ").Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), "XYZ")
	require.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestGet_DisabledCode(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Get", mock.Anything, "XAU").
		Return(&dto.CurrencyRead{Code: "XAU", Active: false}, nil)

	_, err := svc.Get(context.Background(), "XAU")
	require.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestList(t *testing.T) {
	svc, repo := newService(t)
	want := []*dto.CurrencyRead{{Code: "RSD", Active: true}, {Code: "EUR", Active: true}}
	repo.On("List", mock.Anything).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
