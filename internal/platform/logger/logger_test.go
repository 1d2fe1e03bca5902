package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/aluno", func(c *gin.Context) {
		l := FromContext(c)
		l.Info().Msg("inside handler")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/aluno", nil))

	rid := w.Header().Get(RequestIDHeader)
	require.Len(t, rid, 26)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var access map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &access))
	assert.Equal(t, rid, access["request_id"])
	assert.Equal(t, "/aluno", access["path"])
	assert.EqualValues(t, 200, access["status"])
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Configure(Config{Level: ErrorLevel, Output: &bytes.Buffer{}})

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerReplacesMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Configure(Config{Level: ErrorLevel, Output: &bytes.Buffer{}})

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, bad := range []string{
		strings.Repeat("a", 65),
		"abc\r\nSet-Cookie: x=1",
		"<script>",
		"id with spaces",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(RequestIDHeader)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 26, bad)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", 64))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, strings.Repeat("a", 64), w.Header().Get(RequestIDHeader))
}
