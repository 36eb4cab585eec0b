package postgres

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/lib/pq"
)

// SQLSTATE codes this package translates into domain errors
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

// isConstraintViolation reports whether err is a Postgres error with the given
// code raised by the named constraint
func isConstraintViolation(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == code && pqErr.Constraint == constraint
}

func isUniqueViolation(err error, constraint string) bool {
	return isConstraintViolation(err, codeUniqueViolation, constraint)
}

func isForeignKeyViolation(err error, constraint string) bool {
	return isConstraintViolation(err, codeForeignKeyViolation, constraint)
}

// closeRows releases the connection held by rows, logging (not returning) close failures
func closeRows(rows *sql.Rows) {
	if closeErr := rows.Close(); closeErr != nil {
		slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
	}
}

// rollback is deferred after BeginTx; it is a no-op once the tx has committed
func rollback(tx *sql.Tx) {
	if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
		slog.Error("failed to rollback transaction", slog.String("error", rollbackErr.Error()))
	}
}
