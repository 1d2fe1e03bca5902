package loans

import (
	"context"

	"github.com/Masterminds/squirrel"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

const table = "emprestimo"

var listColumns = []string{
	"e.id_emprestimo", "e.id_aluno", "e.id_livro", "e.data_emprestimo", "e.data_devolucao", "e.status_emprestimo",
	"a.ra", "a.nome", "a.sobrenome",
	"l.titulo", "l.autor",
}

type Store struct {
	db      db.DBTX
	dialect db.Dialect
	sb      squirrel.StatementBuilderType
}

func NewStore(q db.DBTX, d db.Dialect) *Store {
	return &Store{db: q, dialect: d, sb: d.Builder()}
}

// List joins every loan with its student and book in one round trip.
func (s *Store) List(ctx context.Context) ([]LoanDetail, error) {
	q, args, err := s.sb.Select(listColumns...).
		From(table + " e").
		Join("aluno a ON a.id_aluno = e.id_aluno").
		Join("livro l ON l.id_livro = e.id_livro").
		OrderBy("e.id_emprestimo").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LoanDetail, 0)
	for rows.Next() {
		var d LoanDetail
		if err := rows.Scan(
			&d.ID, &d.IDAluno, &d.IDLivro, &d.DataEmprestimo, &d.DataDevolucao, &d.StatusEmprestimo,
			&d.RA, &d.Nome, &d.Sobrenome,
			&d.Titulo, &d.Autor,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create leaves referential checks to the foreign keys on emprestimo.
func (s *Store) Create(ctx context.Context, l *Loan) (int64, error) {
	ins := s.sb.Insert(table).
		Columns("id_aluno", "id_livro", "data_emprestimo", "data_devolucao", "status_emprestimo").
		Values(l.IDAluno, l.IDLivro, l.DataEmprestimo, l.DataDevolucao, l.StatusEmprestimo)
	id, err := db.InsertReturningID(ctx, s.db, s.dialect, ins, "id_emprestimo")
	if err != nil {
		return 0, err
	}
	l.ID = id
	return id, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := db.ExecAffected(ctx, s.db, s.sb.Delete(table).Where(squirrel.Eq{"id_emprestimo": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("emprestimo not found")
	}
	return nil
}

func (s *Store) Update(ctx context.Context, l *Loan) error {
	upd := s.sb.Update(table).
		Set("id_aluno", l.IDAluno).
		Set("id_livro", l.IDLivro).
		Set("data_emprestimo", l.DataEmprestimo).
		Set("data_devolucao", l.DataDevolucao).
		Set("status_emprestimo", l.StatusEmprestimo).
		Where(squirrel.Eq{"id_emprestimo": l.ID})
	n, err := db.ExecAffected(ctx, s.db, upd)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("emprestimo not found")
	}
	return nil
}
