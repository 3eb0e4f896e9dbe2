package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Caller is the identity a bearer token attests to: role, subject id, and
// email. It is extracted once per request and passed explicitly to every
// authorization check.
type Caller struct {
	Role      domain.Role
	SubjectID uuid.UUID
	Email     string
}

// IsEmployee reports whether the caller holds the employee role.
func (c Caller) IsEmployee() bool { return c.Role == domain.RoleEmployee }

// IsClient reports whether the caller holds the client role.
func (c Caller) IsClient() bool { return c.Role == domain.RoleClient }

// Service extracts caller identities from validated JWTs. Token issuance
// belongs to the identity provider; GenerateToken exists for tests and
// tooling.
type Service struct {
	cfg    config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(cfg config.Jwt, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// FromToken derives the caller identity from a validated token. Missing or
// malformed claims fail with domain.ErrIncorrectCredentials.
func (s *Service) FromToken(token *jwt.Token) (Caller, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, fmt.Errorf("%w: unexpected claims type", domain.ErrIncorrectCredentials)
	}

	role, _ := claims["role"].(string)
	switch domain.Role(role) {
	case domain.RoleClient, domain.RoleEmployee:
	default:
		return Caller{}, fmt.Errorf("%w: unknown role %q", domain.ErrIncorrectCredentials, role)
	}

	idClaim, _ := claims["id"].(string)
	subjectID, err := uuid.Parse(idClaim)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: bad subject id", domain.ErrIncorrectCredentials)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return Caller{}, fmt.Errorf("%w: missing email claim", domain.ErrIncorrectCredentials)
	}

	return Caller{
		Role:      domain.Role(role),
		SubjectID: subjectID,
		Email:     email,
	}, nil
}

// GenerateToken signs a bearer token carrying the caller's three claims.
func (s *Service) GenerateToken(caller Caller) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":  string(caller.Role),
		"id":    caller.SubjectID.String(),
		"email": caller.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.Expiry).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}
