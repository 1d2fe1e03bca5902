package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"biblioteca-backend/internal/platform/apperr"
)

// MySQL error numbers / PostgreSQL SQLSTATE codes
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451 // parent row still referenced (DELETE/UPDATE)
	mysqlNoReferencedRow = 1452 // child points at a missing parent (INSERT/UPDATE)
	mysqlCheckViolated   = 3819

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func mysqlNumber(err error) (uint16, bool) {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number, true
	}
	return 0, false
}

func pgCode(err error) (string, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return "", false
}

func IsDuplicateKey(err error) bool {
	if n, ok := mysqlNumber(err); ok {
		return n == mysqlDuplicateEntry
	}
	if c, ok := pgCode(err); ok {
		return c == pgUniqueViolation
	}
	return false
}

// IsMissingReference reports an insert/update pointing at a row that does not exist.
func IsMissingReference(err error) bool {
	if n, ok := mysqlNumber(err); ok {
		return n == mysqlNoReferencedRow
	}
	if c, ok := pgCode(err); ok {
		return c == pgForeignKeyViolation
	}
	return false
}

// IsStillReferenced reports a delete blocked by dependent rows.
// PostgreSQL uses one code for both directions of a foreign key.
func IsStillReferenced(err error) bool {
	if n, ok := mysqlNumber(err); ok {
		return n == mysqlRowIsReferenced
	}
	if c, ok := pgCode(err); ok {
		return c == pgForeignKeyViolation
	}
	return false
}

func IsCheckViolation(err error) bool {
	if n, ok := mysqlNumber(err); ok {
		return n == mysqlCheckViolated
	}
	if c, ok := pgCode(err); ok {
		return c == pgCheckViolation
	}
	return false
}

// AppError maps a driver error onto the application error model. Errors that
// already are *apperr.APIError pass through untouched.
func AppError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var api *apperr.APIError
	if errors.As(err, &api) {
		return err
	}
	switch {
	case IsDuplicateKey(err):
		return apperr.Wrap(apperr.CodeConflict, entity+" already exists", err)
	case IsMissingReference(err):
		return apperr.Wrap(apperr.CodeInvalidArgument, entity+" references a missing row", err)
	case IsStillReferenced(err):
		return apperr.Wrap(apperr.CodeConflict, entity+" is still referenced", err)
	case IsCheckViolation(err):
		return apperr.Wrap(apperr.CodeInvalidArgument, entity+" violates a check constraint", err)
	default:
		return apperr.Wrap(apperr.CodeInternal, entity+" query failed", err)
	}
}
