package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrico07/feddit-api/internal/platform/correlation"
	apperrors "github.com/enrico07/feddit-api/internal/platform/errors"
)

func runMiddleware(t *testing.T, handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ErrorHandlingMiddleware()(handler)(c)
	return rec, err
}

func TestErrorHandlingMiddleware_NoError(t *testing.T) {
	rec, err := runMiddleware(t, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHandlingMiddleware_StructuredError(t *testing.T) {
	rec, err := runMiddleware(t, func(c echo.Context) error {
		return apperrors.ValidationError("min_polarity must be a number within [-1, 1]")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "min_polarity")
	assert.Contains(t, rec.Body.String(), `"type":"validation"`)
}

func TestErrorHandlingMiddleware_NotFound(t *testing.T) {
	rec, err := runMiddleware(t, func(c echo.Context) error {
		return apperrors.NotFoundError("subfeddit not found")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorHandlingMiddleware_PlainErrorBecomesGeneric500(t *testing.T) {
	rec, err := runMiddleware(t, func(c echo.Context) error {
		return errors.New("query blew up on table comment")
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "blew up")
}

func TestErrorHandlingMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	httpErr := echo.NewHTTPError(http.StatusMethodNotAllowed)
	_, err := runMiddleware(t, func(c echo.Context) error {
		return httpErr
	})

	assert.Equal(t, httpErr, err)
}

func TestCorrelationMiddleware_AttachesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID string
	var ok bool
	handler := correlationMiddleware(func(c echo.Context) error {
		gotID, ok = correlation.ID(c.Request().Context())
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, ok)
	assert.NotEmpty(t, gotID)
}
