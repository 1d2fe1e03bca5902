package students

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-backend/internal/platform/validation"
)

func newRouter(t *testing.T, repo Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())
	r := gin.New()
	RegisterRoutes(r, NewService(repo))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mensagem(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Mensagem string `json:"mensagem"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Mensagem
}

const anaJSON = `{"ra":"123","nome":"Ana","sobrenome":"Silva","dataNascimento":"2000-01-01","endereco":"Rua A","email":"a@a.com","celular":"11999999999"}`

func TestCreateThenList(t *testing.T) {
	r := newRouter(t, newMemRepo())

	w := do(r, http.MethodPost, "/novo/aluno", anaJSON)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aluno cadastrado com sucesso!", mensagem(t, w))

	w = do(r, http.MethodGet, "/aluno", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Positive(t, list[0].IDAluno)

	var want StudentResponse
	require.NoError(t, json.Unmarshal([]byte(anaJSON), &want))
	want.IDAluno = list[0].IDAluno
	assert.Equal(t, want, list[0])
}

func TestListEmptyIsArray(t *testing.T) {
	r := newRouter(t, newMemRepo())

	w := do(r, http.MethodGet, "/aluno", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListFailure(t *testing.T) {
	repo := newMemRepo()
	repo.err = errors.New("dial tcp: connection refused")
	r := newRouter(t, repo)

	w := do(r, http.MethodGet, "/aluno", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Não foi possível acessar a listagem de alunos", mensagem(t, w))
}

func TestCreateInvalidBody(t *testing.T) {
	r := newRouter(t, newMemRepo())

	for _, body := range []string{
		`{"ra":`,
		`{"ra":"  ","nome":"Ana","sobrenome":"Silva","dataNascimento":"2000-01-01"}`,
		`{"ra":"1","nome":"Ana","sobrenome":"Silva","dataNascimento":"01-01-2000"}`,
		`{"ra":"1","nome":"Ana","sobrenome":"Silva","dataNascimento":"2000-01-01","email":"nope"}`,
	} {
		w := do(r, http.MethodPost, "/novo/aluno", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Erro ao cadastrar o aluno. Entre em contato com o administrador do sistema.", mensagem(t, w), body)
	}
}

func TestCreateUnexpectedFailure(t *testing.T) {
	repo := newMemRepo()
	repo.err = errors.New("driver: bad connection")
	r := newRouter(t, repo)

	w := do(r, http.MethodPost, "/novo/aluno", anaJSON)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Não foi possível cadastrar o aluno. Entre em contato com o administrador do sistema.", mensagem(t, w))
}

func TestDeleteAndUpdate(t *testing.T) {
	r := newRouter(t, newMemRepo())
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/novo/aluno", anaJSON).Code)

	w := do(r, http.MethodPut, "/atualizar/aluno/1", anaJSON)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aluno atualizado com sucesso!", mensagem(t, w))

	w = do(r, http.MethodDelete, "/delete/aluno/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aluno removido com sucesso!", mensagem(t, w))

	w = do(r, http.MethodDelete, "/delete/aluno/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Erro ao remover o aluno. Entre em contato com o administrador do sistema.", mensagem(t, w))

	w = do(r, http.MethodPut, "/atualizar/aluno/1", anaJSON)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Erro ao atualizar o aluno. Entre em contato com o administrador do sistema.", mensagem(t, w))
}

func TestRejectsNonNumericID(t *testing.T) {
	r := newRouter(t, newMemRepo())

	for _, path := range []string{"/delete/aluno/abc", "/delete/aluno/0"} {
		w := do(r, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	w := do(r, http.MethodPut, "/atualizar/aluno/x1", anaJSON)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
