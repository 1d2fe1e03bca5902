package books

import (
	"context"

	"github.com/Masterminds/squirrel"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

const table = "livro"

var columns = []string{
	"id_livro", "titulo", "autor", "editora", "ano_publicacao", "isbn",
	"quant_total", "quant_disponivel", "valor_aquisicao", "status_livro_emprestado",
}

type Store struct {
	db      db.DBTX
	dialect db.Dialect
	sb      squirrel.StatementBuilderType
}

func NewStore(q db.DBTX, d db.Dialect) *Store {
	return &Store{db: q, dialect: d, sb: d.Builder()}
}

func (s *Store) List(ctx context.Context) ([]Book, error) {
	q, args, err := s.sb.Select(columns...).From(table).OrderBy("id_livro").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0)
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Titulo, &b.Autor, &b.Editora, &b.AnoPublicacao, &b.ISBN,
			&b.QuantTotal, &b.QuantDisponivel, &b.ValorAquisicao, &b.StatusLivroEmprestado,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, b *Book) (int64, error) {
	ins := s.sb.Insert(table).
		Columns(columns[1:]...).
		Values(b.Titulo, b.Autor, b.Editora, b.AnoPublicacao, b.ISBN,
			b.QuantTotal, b.QuantDisponivel, b.ValorAquisicao, b.StatusLivroEmprestado)
	id, err := db.InsertReturningID(ctx, s.db, s.dialect, ins, "id_livro")
	if err != nil {
		return 0, err
	}
	b.ID = id
	return id, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := db.ExecAffected(ctx, s.db, s.sb.Delete(table).Where(squirrel.Eq{"id_livro": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("livro not found")
	}
	return nil
}

func (s *Store) Update(ctx context.Context, b *Book) error {
	upd := s.sb.Update(table).
		Set("titulo", b.Titulo).
		Set("autor", b.Autor).
		Set("editora", b.Editora).
		Set("ano_publicacao", b.AnoPublicacao).
		Set("isbn", b.ISBN).
		Set("quant_total", b.QuantTotal).
		Set("quant_disponivel", b.QuantDisponivel).
		Set("valor_aquisicao", b.ValorAquisicao).
		Set("status_livro_emprestado", b.StatusLivroEmprestado).
		Where(squirrel.Eq{"id_livro": b.ID})
	n, err := db.ExecAffected(ctx, s.db, upd)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound("livro not found")
	}
	return nil
}
