package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/logger"
	"biblioteca-backend/internal/platform/messages"
)

// MessageBody is the only envelope resource routes answer with besides list arrays.
type MessageBody struct {
	Mensagem string `json:"mensagem" example:"Aluno cadastrado com sucesso!"`
}

// LangParam is the query parameter that opts a request into another language.
const LangParam = "lang"

func text(c *gin.Context, key string) string {
	return messages.Printer(c.Query(LangParam)).Sprintf(key)
}

// OK writes 200 with the success text of a write operation.
func OK(c *gin.Context, r messages.Resource, op messages.Op) {
	c.JSON(http.StatusOK, MessageBody{Mensagem: text(c, messages.Key(r, op, messages.Success))})
}

// Fail logs the cause and writes 400 with the resource's failure text.
// Expected failures get the "Erro ao ..." text, everything else "Não foi possível ...".
func Fail(c *gin.Context, r messages.Resource, op messages.Op, err error) {
	l := logger.FromContext(c)
	outcome := messages.Failed
	ev := l.Warn()
	if !apperr.IsLogical(err) {
		outcome = messages.Unavailable
		ev = l.Error()
	}
	ev.Err(err).
		Str("resource", string(r)).
		Str("op", string(op)).
		Str("code", string(apperr.CodeOf(err))).
		Msg("request failed")

	c.JSON(http.StatusBadRequest, MessageBody{Mensagem: text(c, messages.Key(r, op, outcome))})
}

// Hello answers the liveness route.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageBody{Mensagem: text(c, messages.Hello)})
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalid("invalid " + name + ": " + strconv.Quote(raw))
	}
	return id, nil
}
