package auth_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *auth.Service {
	return auth.New(config.Jwt{Secret: "test-secret", Expiry: time.Hour}, slog.Default())
}

func parse(t *testing.T, signed string) *jwt.Token {
	t.Helper()
	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	return token
}

func TestFromToken_RoundTrip(t *testing.T) {
	svc := newService()
	want := auth.Caller{
		Role:      domain.RoleEmployee,
		SubjectID: uuid.New(),
		Email:     "john.smith@example.com",
	}
	signed, err := svc.GenerateToken(want)
	require.NoError(t, err)

	got, err := svc.FromToken(parse(t, signed))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromToken_UnknownRole(t *testing.T) {
	svc := newService()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":  "superadmin",
		"id":    uuid.New().String(),
		"email": "x@example.com",
	})
	_, err := svc.FromToken(token)
	require.ErrorIs(t, err, domain.ErrIncorrectCredentials)
}

func TestFromToken_BadSubjectID(t *testing.T) {
	svc := newService()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":  "client",
		"id":    "not-a-uuid",
		"email": "x@example.com",
	})
	_, err := svc.FromToken(token)
	require.ErrorIs(t, err, domain.ErrIncorrectCredentials)
}

func TestFromToken_MissingEmail(t *testing.T) {
	svc := newService()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "client",
		"id":   uuid.New().String(),
	})
	_, err := svc.FromToken(token)
	require.ErrorIs(t, err, domain.ErrIncorrectCredentials)
}

func TestCallerRoleHelpers(t *testing.T) {
	assert.True(t, auth.Caller{Role: domain.RoleEmployee}.IsEmployee())
	assert.False(t, auth.Caller{Role: domain.RoleEmployee}.IsClient())
	assert.True(t, auth.Caller{Role: domain.RoleClient}.IsClient())
}
