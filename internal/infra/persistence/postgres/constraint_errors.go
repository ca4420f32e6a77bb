package postgres

import (
	"strings"

	domainerrors "medlocator/internal/domain/errors"
	"medlocator/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, matched in driver error text when GORM has not
// translated the error (TranslateError is off unless go-lib enables it)
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateForeignKeyViolation)
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateUniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}

// translateWriteError maps constraint failures on insert or update to domain errors.
func translateWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrClinicNotFound.WrapMessage(details)
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("record already exists")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("missing required field")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("quantity and price must not be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
