package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/messages"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(t *testing.T, path, target string, h gin.HandlerFunc, lang string) (int, MessageBody) {
	t.Helper()
	r := gin.New()
	r.GET(path, h)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,pt-BR;q=0.8")
	if lang != "" {
		req.URL.RawQuery = LangParam + "=" + lang
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body MessageBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestFailPicksTextByErrorKind(t *testing.T) {
	code, body := serve(t, "/x", "/x", func(c *gin.Context) {
		Fail(c, messages.Book, messages.OpCreate, apperr.ErrInvalid("quantDisponivel > quantTotal"))
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Erro ao cadastrar o livro. Entre em contato com o administrador do sistema.", body.Mensagem)

	code, body = serve(t, "/x", "/x", func(c *gin.Context) {
		Fail(c, messages.Book, messages.OpCreate, errors.New("driver: bad connection"))
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Não foi possível cadastrar o livro. Entre em contato com o administrador do sistema.", body.Mensagem)
}

func TestOKAndHello(t *testing.T) {
	code, body := serve(t, "/x", "/x", func(c *gin.Context) { OK(c, messages.Loan, messages.OpDelete) }, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Emprestimo removido com sucesso!", body.Mensagem)

	_, body = serve(t, "/", "/", Hello, "")
	assert.Equal(t, "Olá, mundo!", body.Mensagem)

	_, body = serve(t, "/", "/", Hello, "en")
	assert.Equal(t, "Hello, world!", body.Mensagem)
}

func TestParseID(t *testing.T) {
	for target, ok := range map[string]bool{"/x/12": true, "/x/0": false, "/x/-3": false, "/x/abc": false, "/x/1.5": false} {
		var got int64
		var gotErr error
		r := gin.New()
		r.GET("/x/:id", func(c *gin.Context) {
			got, gotErr = ParseID(c, "id")
			c.Status(http.StatusNoContent)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

		if ok {
			require.NoError(t, gotErr, target)
			assert.EqualValues(t, 12, got)
		} else {
			require.Error(t, gotErr, target)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(gotErr))
		}
	}
}
