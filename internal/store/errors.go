package store

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds returned by store operations. Handlers pick HTTP statuses by
// inspecting these with errors.Is; anything else is an internal error.
var (
	ErrNotFound   = errors.New("record not found")
	ErrForeignKey = errors.New("foreign key violation")
	ErrUnique     = errors.New("unique constraint violation")
	ErrValidation = errors.New("validation failed")
)

// classify maps gorm/driver errors onto store error kinds. Integrity errors
// the explicit pre-checks missed (concurrent writers) still surface with the
// right kind because InitDB enables TranslateError.
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}
	return err
}
