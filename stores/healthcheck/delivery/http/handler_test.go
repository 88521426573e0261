package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/middleware"
)

type fakeCheck struct {
	err error
}

func (f *fakeCheck) Check(ctx.Ctx) error { return f.err }

func TestCheck(t *testing.T) {
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	hc := &fakeCheck{}
	New(e, hc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"healthy":true}`, rec.Body.String())

	hc.err = errors.New("redis: connection refused")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"healthy":false,"message":"redis: connection refused"}`, rec.Body.String())
}
