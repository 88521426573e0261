package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/domain"
)

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		domain.ErrNotFound:                http.StatusNotFound,
		domain.ErrBadParamInput:           http.StatusBadRequest,
		domain.ErrUnauthorized:            http.StatusUnauthorized,
		domain.ErrPreconditionFailed:      http.StatusConflict,
		domain.ErrInvalidStatusTransition: http.StatusConflict,
		domain.ErrStoreUnavailable:        http.StatusServiceUnavailable,
		domain.ErrChainReadFailure:        http.StatusBadGateway,
		domain.ErrTransactionFailed:       http.StatusBadGateway,
		errors.New("boom"):                http.StatusInternalServerError,
	}
	for err, want := range cases {
		require.Equal(t, want, StatusOf(err, http.StatusInternalServerError), err.Error())
	}
	wrapped := xerrors.Errorf("dial: %w", domain.ErrStoreUnavailable)
	require.Equal(t, http.StatusServiceUnavailable, StatusOf(wrapped, http.StatusInternalServerError))
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, domain.ErrNotFound))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"data":"Your requested Item is not found","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, http.StatusOK, map[string]int{"n": 1}))
	require.JSONEq(t, `{"data":{"n":1},"status":"success"}`, rec.Body.String())
}
