package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/go-errors/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorMessage(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := Internal("querying jobs", cause)
	assert.Equal(t, "INTERNAL: querying jobs: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())

	plain := NotFound("job", nil)
	assert.Equal(t, "NOT_FOUND: job", plain.Error())
	assert.NotEmpty(t, plain.StackTrace())
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("list: %w", Unavailable("extraction disabled", nil))
	assert.Equal(t, ErrTypeUnavailable, TypeOf(wrapped))
	assert.Equal(t, ErrTypeInvalidInput, TypeOf(InvalidInput("bad", nil)))
	assert.Equal(t, ErrTypeInternal, TypeOf(stderrors.New("boom")))

	var de *DomainError
	require.ErrorAs(t, wrapped, &de)
	assert.Equal(t, "extraction disabled", de.Message)
}

func TestStackKeepsCauseTrace(t *testing.T) {
	cause := goerrors.New("disk full")

	err := Internal("creating job", cause)
	assert.Equal(t, cause.Stack(), err.StackTrace())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("job", nil), http.StatusNotFound},
		{InvalidInput("field", nil), http.StatusBadRequest},
		{Unavailable("extraction", nil), http.StatusServiceUnavailable},
		{Internal("db", stderrors.New("reset")), http.StatusInternalServerError},
		{stderrors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestLogFields(t *testing.T) {
	internal := LogFields(Internal("db", stderrors.New("reset")))
	require.Len(t, internal, 3)
	assert.Equal(t, "error_type", internal[1].Key)
	assert.Equal(t, "INTERNAL", internal[1].String)
	assert.Equal(t, "stack", internal[2].Key)

	assert.Len(t, LogFields(Unavailable("llm", nil)), 2)
}
