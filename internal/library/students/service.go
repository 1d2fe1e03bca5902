package students

import (
	"context"
	"strings"
	"time"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, st *Student) (int64, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, st *Student) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]StudentResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.AppError(err, "aluno")
	}
	out := make([]StudentResponse, 0, len(list))
	for _, st := range list {
		out = append(out, toResponse(st))
	}
	return out, nil
}

// Create returns the id assigned by the database.
func (s *Service) Create(ctx context.Context, in StudentRequest) (int64, error) {
	st, err := fromRequest(in)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, &st)
	if err != nil {
		return 0, db.AppError(err, "aluno")
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.AppError(s.repo.Delete(ctx, id), "aluno")
}

// Update replaces every column of the student at id; an id in the body is ignored.
func (s *Service) Update(ctx context.Context, id int64, in StudentRequest) error {
	st, err := fromRequest(in)
	if err != nil {
		return err
	}
	st.ID = id
	return db.AppError(s.repo.Update(ctx, &st), "aluno")
}

func fromRequest(in StudentRequest) (Student, error) {
	born, err := time.Parse(dateLayout, in.DataNascimento)
	if err != nil {
		return Student{}, apperr.ErrInvalid("dataNascimento must be YYYY-MM-DD")
	}
	if born.After(time.Now()) {
		return Student{}, apperr.ErrInvalid("dataNascimento is in the future")
	}
	return Student{
		RA:             strings.TrimSpace(in.RA),
		Nome:           strings.TrimSpace(in.Nome),
		Sobrenome:      strings.TrimSpace(in.Sobrenome),
		DataNascimento: born,
		Endereco:       strings.TrimSpace(in.Endereco),
		Email:          strings.TrimSpace(in.Email),
		Celular:        strings.TrimSpace(in.Celular),
	}, nil
}
