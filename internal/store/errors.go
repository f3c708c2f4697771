package store

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrStoreClosed = errors.New("store unavailable: connection closed")
	ErrDuplicateID = errors.New("duplicate identifier")
	ErrConstraint  = errors.New("constraint violation")
	// ErrUnknownSupplier is a constraint violation on Product.KodeSupplier.
	ErrUnknownSupplier = errors.Wrap(ErrConstraint, "unknown supplier")
)

// MissingField reports an empty required column.
func MissingField(table, column string) error {
	return errors.Wrapf(ErrConstraint, "%s.%s is required", table, column)
}

// Negative reports a numeric column below zero.
func Negative(table, column string) error {
	return errors.Wrapf(ErrConstraint, "%s.%s must not be negative", table, column)
}

// translate maps driver failures onto the store's error classes.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreClosed) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrDuplicateID) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrap(ErrDuplicateID, err.Error())
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errors.Wrap(ErrConstraint, err.Error())
	}
	if errors.Is(err, sql.ErrConnDone) {
		return ErrStoreClosed
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return errors.Wrap(ErrDuplicateID, err.Error())
	case strings.Contains(msg, "not null constraint"), strings.Contains(msg, "violates not-null"),
		strings.Contains(msg, "check constraint"):
		return errors.Wrap(ErrConstraint, err.Error())
	case strings.Contains(msg, "database is closed"):
		return ErrStoreClosed
	}
	return err
}
