package students

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

func newMockStore(t *testing.T, d db.Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewStore(sqlDB, d), mock
}

func TestStoreList(t *testing.T) {
	s, mock := newMockStore(t, db.MySQL)
	born := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id_aluno, ra, nome, sobrenome, data_nascimento, endereco, email, celular FROM aluno ORDER BY id_aluno")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "123", "Ana", "Silva", born, "Rua A", "a@a.com", "11999999999"))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].ID)
	assert.Equal(t, born, got[0].DataNascimento)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListEmptyIsNotNil(t *testing.T) {
	s, mock := newMockStore(t, db.MySQL)
	mock.ExpectQuery("SELECT .* FROM aluno").WillReturnRows(sqlmock.NewRows(columns))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreCreatePostgres(t *testing.T) {
	s, mock := newMockStore(t, db.Postgres)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO aluno (ra,nome,sobrenome,data_nascimento,endereco,email,celular) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id_aluno")).
		WithArgs("123", "Ana", "Silva", sqlmock.AnyArg(), "Rua A", "a@a.com", "11999999999").
		WillReturnRows(sqlmock.NewRows([]string{"id_aluno"}).AddRow(5))

	st := &Student{RA: "123", Nome: "Ana", Sobrenome: "Silva", DataNascimento: time.Now(),
		Endereco: "Rua A", Email: "a@a.com", Celular: "11999999999"}
	id, err := s.Create(context.Background(), st)
	require.NoError(t, err)
	assert.EqualValues(t, 5, id)
	assert.EqualValues(t, 5, st.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreDeleteMissing(t *testing.T) {
	s, mock := newMockStore(t, db.MySQL)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM aluno WHERE id_aluno = ?")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), 99)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreUpdate(t *testing.T) {
	s, mock := newMockStore(t, db.MySQL)
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE aluno SET ra = ?, nome = ?, sobrenome = ?, data_nascimento = ?, endereco = ?, email = ?, celular = ? WHERE id_aluno = ?")).
		WithArgs("123", "Ana", "Souza", sqlmock.AnyArg(), "", "", "", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update(context.Background(), &Student{ID: 3, RA: "123", Nome: "Ana", Sobrenome: "Souza"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
