package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Nome  string `json:"nome" binding:"notblank"`
	Total int    `json:"quantTotal" binding:"gte=0"`
}

func TestNotBlank(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())

	assert.NoError(t, binding.Validator.ValidateStruct(sample{Nome: "Ana"}))

	err := binding.Validator.ValidateStruct(sample{Nome: "   ", Total: -1})
	require.Error(t, err)
	assert.Equal(t, "nome:notblank,quantTotal:gte", Describe(err))
}

func TestDescribePlainError(t *testing.T) {
	assert.Equal(t, "unexpected EOF", Describe(errors.New("unexpected EOF")))
}
