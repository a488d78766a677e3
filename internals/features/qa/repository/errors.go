package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	qmodel "problems_service/internals/features/qa/model"
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// sqlite and anything not going through pgx
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}

// passThrough reports errors that already belong to the caller-facing
// taxonomy and must not be wrapped as transaction failures.
func passThrough(err error) bool {
	var ve *qmodel.ValidationError
	return errors.Is(err, qmodel.ErrNotFound) || errors.As(err, &ve)
}

func wrapTx(err error) error {
	if err == nil || passThrough(err) {
		return err
	}
	return fmt.Errorf("%w: %v", qmodel.ErrTransaction, err)
}
