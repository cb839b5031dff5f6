package dbx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes we react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint failure.
func IsUniqueViolation(err error) bool {
	return hasCode(err, pgUniqueViolation)
}

// IsForeignKeyViolation reports whether err references a missing row.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgForeignKeyViolation)
}

// IsInvalidText reports whether a parameter could not be parsed as the
// column type, for example a malformed UUID.
func IsInvalidText(err error) bool {
	return hasCode(err, pgInvalidText)
}

// WrapError classifies a failed query. An id that is not a valid UUID can
// never match a row, so it reads as common.ErrorNotFound; anything else is
// wrapped as a db error.
func WrapError(err error) error {
	if IsInvalidText(err) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
