package repository

import (
	"errors"
	"testing"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, MapError(gorm.ErrDuplicatedKey), domain.ErrAlreadyExists)
	assert.ErrorIs(t,
		MapError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}),
		domain.ErrAlreadyExists)

	opaque := errors.New("connection reset")
	assert.Equal(t, opaque, MapError(opaque))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}
