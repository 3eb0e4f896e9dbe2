package repository

import (
	"errors"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapError translates driver and ORM errors to domain sentinels so services
// never depend on gorm or postgres error types.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if IsUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// IsUniqueViolation reports whether err is a unique constraint rejection.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
