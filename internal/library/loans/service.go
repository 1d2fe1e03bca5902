package loans

import (
	"context"
	"strings"
	"time"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]LoanDetail, error)
	Create(ctx context.Context, l *Loan) (int64, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, l *Loan) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]LoanResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.AppError(err, "emprestimo")
	}
	out := make([]LoanResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toResponse(d))
	}
	return out, nil
}

// Create fails with INVALID_ARGUMENT when idAluno or idLivro does not exist.
func (s *Service) Create(ctx context.Context, in LoanRequest) (int64, error) {
	l, err := fromRequest(in)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, &l)
	if err != nil {
		return 0, db.AppError(err, "emprestimo")
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.AppError(s.repo.Delete(ctx, id), "emprestimo")
}

func (s *Service) Update(ctx context.Context, id int64, in LoanRequest) error {
	l, err := fromRequest(in)
	if err != nil {
		return err
	}
	l.ID = id
	return db.AppError(s.repo.Update(ctx, &l), "emprestimo")
}

func fromRequest(in LoanRequest) (Loan, error) {
	if in.IDAluno <= 0 || in.IDLivro <= 0 {
		return Loan{}, apperr.ErrInvalid("idAluno and idLivro are required")
	}
	lent, err := time.Parse(dateLayout, in.DataEmprestimo)
	if err != nil {
		return Loan{}, apperr.ErrInvalid("dataEmprestimo must be YYYY-MM-DD")
	}
	due, err := time.Parse(dateLayout, in.DataDevolucao)
	if err != nil {
		return Loan{}, apperr.ErrInvalid("dataDevolucao must be YYYY-MM-DD")
	}
	if due.Before(lent) {
		return Loan{}, apperr.ErrInvalid("dataDevolucao before dataEmprestimo")
	}
	return Loan{
		IDAluno:          in.IDAluno,
		IDLivro:          in.IDLivro,
		DataEmprestimo:   lent,
		DataDevolucao:    due,
		StatusEmprestimo: strings.TrimSpace(in.StatusEmprestimo),
	}, nil
}
