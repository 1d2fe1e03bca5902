package books

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, b *Book) (int64, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, b *Book) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]BookResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.AppError(err, "livro")
	}
	out := make([]BookResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toResponse(b))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in BookRequest) (int64, error) {
	b, err := fromRequest(in)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, &b)
	if err != nil {
		return 0, db.AppError(err, "livro")
	}
	return id, nil
}

// Delete fails with CONFLICT while loans still point at the book.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.AppError(s.repo.Delete(ctx, id), "livro")
}

func (s *Service) Update(ctx context.Context, id int64, in BookRequest) error {
	b, err := fromRequest(in)
	if err != nil {
		return err
	}
	b.ID = id
	return db.AppError(s.repo.Update(ctx, &b), "livro")
}

func fromRequest(in BookRequest) (Book, error) {
	published, err := time.Parse(dateLayout, in.AnoPublicacao)
	if err != nil {
		return Book{}, apperr.ErrInvalid("anoPublicacao must be YYYY-MM-DD")
	}
	if in.QuantTotal < 0 || in.QuantDisponivel < 0 || in.QuantDisponivel > in.QuantTotal {
		return Book{}, apperr.ErrInvalid(fmt.Sprintf(
			"quantDisponivel (%d) must be between 0 and quantTotal (%d)", in.QuantDisponivel, in.QuantTotal))
	}
	if in.ValorAquisicao < 0 {
		return Book{}, apperr.ErrInvalid("valorAquisicao must not be negative")
	}
	return Book{
		Titulo:                strings.TrimSpace(in.Titulo),
		Autor:                 strings.TrimSpace(in.Autor),
		Editora:               strings.TrimSpace(in.Editora),
		AnoPublicacao:         published,
		ISBN:                  strings.TrimSpace(in.ISBN),
		QuantTotal:            in.QuantTotal,
		QuantDisponivel:       in.QuantDisponivel,
		ValorAquisicao:        in.ValorAquisicao,
		StatusLivroEmprestado: strings.TrimSpace(in.StatusLivroEmprestado),
	}, nil
}
