package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	historyMocks "github.com/x-xyz/listingsync/domain/history/mocks"
	"github.com/x-xyz/listingsync/middleware"
)

const account = "0x7b8c1f0a5a4e5b5e2d1f9a2c3b4d5e6f7a8b9c0d"

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestList(t *testing.T) {
	uc := historyMocks.NewUseCase(t)
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, uc)

	uc.On("List", mock.Anything, domain.Address(account), 10).Return([]*history.Record{
		{Id: "r2", Account: account, Type: history.TxTypePurchase, Status: history.TxStatusConfirmed, TxHash: "0xabc"},
		{Id: "r1", Account: account, Type: history.TxTypeApprove, Status: history.TxStatusFailed, Error: "rejected"},
	}, nil).Once()

	rec := serve(e, "/history/"+account+"?limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	res := struct {
		Data []*history.Record `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Data, 2)
	require.Equal(t, "r2", res.Data[0].Id)
	require.Equal(t, "rejected", res.Data[1].Error)

	require.Equal(t, http.StatusBadRequest, serve(e, "/history/"+account+"?limit=-1").Code)
	require.Equal(t, http.StatusBadRequest, serve(e, "/history/not-an-address").Code)
}
