package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB, mock
}

func TestRunInTxCommits(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RunInTx(context.Background(), sqlDB, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE livro SET quant_disponivel = 1")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTxRollsBack(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := RunInTx(context.Background(), sqlDB, nil, func(ctx context.Context, tx DBTX) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReturningIDMySQL(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO aluno (ra,nome) VALUES (?,?)")).
		WithArgs("123", "Ana").
		WillReturnResult(sqlmock.NewResult(42, 1))

	ins := MySQL.Builder().Insert("aluno").Columns("ra", "nome").Values("123", "Ana")
	id, err := InsertReturningID(context.Background(), sqlDB, MySQL, ins, "id_aluno")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReturningIDPostgres(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO aluno (ra,nome) VALUES ($1,$2) RETURNING id_aluno")).
		WithArgs("123", "Ana").
		WillReturnRows(sqlmock.NewRows([]string{"id_aluno"}).AddRow(7))

	ins := Postgres.Builder().Insert("aluno").Columns("ra", "nome").Values("123", "Ana")
	id, err := InsertReturningID(context.Background(), sqlDB, Postgres, ins, "id_aluno")
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecAffected(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM livro WHERE id_livro = ?")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := ExecAffected(context.Background(), sqlDB, MySQL.Builder().Delete("livro").Where("id_livro = ?", int64(9)))
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
