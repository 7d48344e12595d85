package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := ValidationError("min_polarity out of range")
	assert.Equal(t, "validation: min_polarity out of range", err.Error())

	cause := errors.New("connection refused")
	wrapped := InternalError("failed to fetch comments", cause)
	assert.Equal(t, "internal: failed to fetch comments: connection refused", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError("failed to fetch comments", cause)

	assert.ErrorIs(t, err, cause)
}

func TestError_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("bad").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFoundError("missing").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("boom", nil).HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, ExternalError("upstream", nil).HTTPStatus())

	unknown := &Error{Type: ErrorType("mystery")}
	assert.Equal(t, http.StatusInternalServerError, unknown.HTTPStatus())
}

func TestError_WithField(t *testing.T) {
	err := NotFoundError("subfeddit not found").
		WithField("subfeddit_name", "missing_topic").
		WithField("limit", 25)

	assert.Equal(t, "missing_topic", err.Context["subfeddit_name"])
	assert.Equal(t, 25, err.Context["limit"])
}

func TestError_ToResponse_HidesCause(t *testing.T) {
	cause := errors.New("pq: syntax error in query")
	err := InternalError("failed to fetch comments", cause).WithField("subfeddit_name", "dummy_topic_1")

	resp := err.ToResponse()

	assert.Equal(t, "failed to fetch comments", resp.Error)
	assert.Equal(t, TypeInternal, resp.Type)
	assert.Equal(t, "dummy_topic_1", resp.Context["subfeddit_name"])
	assert.NotContains(t, resp.Error, "syntax error")
}

func TestAsStructuredError(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))

	structured := ValidationError("bad input")
	assert.Same(t, structured, AsStructuredError(structured))

	plain := errors.New("something broke")
	converted := AsStructuredError(plain)
	require.NotNil(t, converted)
	assert.Equal(t, TypeInternal, converted.Type)
	assert.Equal(t, "internal server error", converted.Message)
	assert.ErrorIs(t, converted, plain)
}
