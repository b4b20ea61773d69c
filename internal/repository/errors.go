package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды из https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation  = "23503"
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// ConstraintName возвращает имя нарушенного ограничения или пустую строку.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
