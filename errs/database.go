package errs

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// FromDB maps a gorm/driver error to the application taxonomy. Unique
// constraint violations are surfaced distinctly so callers can present a
// specific message; everything else that reaches the driver is treated as
// the store being unavailable for this request.
func FromDB(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFound(entity, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewConflict(entity, err)
	}

	// The postgres driver reports constraint violations by SQLSTATE; gorm
	// passes them through untranslated unless TranslateError is set.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "SQLSTATE 23505"), strings.Contains(msg, "duplicate key"):
		return NewConflict(entity, err)
	}

	return NewStoreUnavailable(entity, err)
}
