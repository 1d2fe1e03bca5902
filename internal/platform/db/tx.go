package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RunInTx runs fn inside a transaction: COMMIT when fn returns nil, ROLLBACK otherwise.
func RunInTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// InsertReturningID executes ins and returns the generated key. PostgreSQL has no
// LastInsertId, so the key comes back through RETURNING there.
func InsertReturningID(ctx context.Context, q DBTX, d Dialect, ins squirrel.InsertBuilder, idColumn string) (int64, error) {
	if d == Postgres {
		query, args, err := ins.Suffix("RETURNING " + idColumn).ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert: %w", err)
		}
		var id int64
		if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if aff != 1 {
		return 0, fmt.Errorf("insert affected %d rows", aff)
	}
	return res.LastInsertId()
}

// ExecAffected runs an UPDATE/DELETE builder and returns the affected row count.
func ExecAffected(ctx context.Context, q DBTX, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
