package students

import (
	"context"

	"github.com/Masterminds/squirrel"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

const table = "aluno"

var columns = []string{
	"id_aluno", "ra", "nome", "sobrenome", "data_nascimento", "endereco", "email", "celular",
}

type Store struct {
	db      db.DBTX
	dialect db.Dialect
	sb      squirrel.StatementBuilderType
}

func NewStore(q db.DBTX, d db.Dialect) *Store {
	return &Store{db: q, dialect: d, sb: d.Builder()}
}

// List returns every student ordered by id; an empty table yields an empty, non-nil slice.
func (s *Store) List(ctx context.Context) ([]Student, error) {
	q, args, err := s.sb.Select(columns...).From(table).OrderBy("id_aluno").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Student, 0)
	for rows.Next() {
		var st Student
		if err := rows.Scan(
			&st.ID, &st.RA, &st.Nome, &st.Sobrenome, &st.DataNascimento,
			&st.Endereco, &st.Email, &st.Celular,
		); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, st *Student) (int64, error) {
	ins := s.sb.Insert(table).
		Columns(columns[1:]...).
		Values(st.RA, st.Nome, st.Sobrenome, st.DataNascimento, st.Endereco, st.Email, st.Celular)
	id, err := db.InsertReturningID(ctx, s.db, s.dialect, ins, "id_aluno")
	if err != nil {
		return 0, err
	}
	st.ID = id
	return id, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := db.ExecAffected(ctx, s.db, s.sb.Delete(table).Where(squirrel.Eq{"id_aluno": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("aluno not found")
	}
	return nil
}

func (s *Store) Update(ctx context.Context, st *Student) error {
	upd := s.sb.Update(table).
		Set("ra", st.RA).
		Set("nome", st.Nome).
		Set("sobrenome", st.Sobrenome).
		Set("data_nascimento", st.DataNascimento).
		Set("endereco", st.Endereco).
		Set("email", st.Email).
		Set("celular", st.Celular).
		Where(squirrel.Eq{"id_aluno": st.ID})
	n, err := db.ExecAffected(ctx, s.db, upd)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("aluno not found")
	}
	return nil
}
