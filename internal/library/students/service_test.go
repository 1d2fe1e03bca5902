package students

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-backend/internal/platform/apperr"
)

// memRepo keeps students in memory and enforces the unique ra like the schema does.
type memRepo struct {
	mu     sync.Mutex
	rows   map[int64]Student
	nextID int64
	err    error
}

func newMemRepo() *memRepo { return &memRepo{rows: map[int64]Student{}} }

func (m *memRepo) List(ctx context.Context) ([]Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]Student, 0, len(m.rows))
	for _, st := range m.rows {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) Create(ctx context.Context, st *Student) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, r := range m.rows {
		if r.RA == st.RA {
			return 0, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry for key 'uq_aluno_ra'"}
		}
	}
	m.nextID++
	st.ID = m.nextID
	m.rows[st.ID] = *st
	return st.ID, nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return apperr.ErrNotFound("aluno not found")
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo) Update(ctx context.Context, st *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[st.ID]; !ok {
		return apperr.ErrNotFound("aluno not found")
	}
	m.rows[st.ID] = *st
	return nil
}

func validRequest() StudentRequest {
	return StudentRequest{
		RA: "123", Nome: "Ana", Sobrenome: "Silva", DataNascimento: "2000-01-01",
		Endereco: "Rua A", Email: "a@a.com", Celular: "11999999999",
	}
}

func TestServiceCreateAndList(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Positive(t, id)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2000-01-01", list[0].DataNascimento)
	assert.Equal(t, id, list[0].IDAluno)
}

func TestServiceDuplicateRAIsConflict(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, validRequest())
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestServiceRejectsBadDates(t *testing.T) {
	svc := NewService(newMemRepo())
	for _, d := range []string{"01/01/2000", "2999-01-01"} {
		req := validRequest()
		req.DataNascimento = d
		_, err := svc.Create(context.Background(), req)
		assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err), d)
	}
}

func TestServiceUpdateUsesPathID(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Sobrenome = "Souza"
	require.NoError(t, svc.Update(ctx, id, req))
	assert.Equal(t, "Souza", repo.rows[id].Sobrenome)

	err = svc.Update(ctx, id+100, req)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestServiceDriverErrorIsInternal(t *testing.T) {
	repo := newMemRepo()
	repo.err = errors.New("dial tcp: connection refused")
	svc := NewService(repo)

	_, err := svc.List(context.Background())
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
	assert.False(t, apperr.IsLogical(err))
}
