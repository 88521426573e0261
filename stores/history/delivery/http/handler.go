package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/delivery"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	"github.com/x-xyz/listingsync/middleware"
)

type handler struct {
	history history.UseCase
}

func New(e *echo.Echo, history history.UseCase) {
	h := &handler{history}

	e.GET("/history/:address", h.list, middleware.IsValidAddress("address"))
}

// list
//
//	@Summary		Get transaction history
//	@Description	Latest marketplace actions of an account, newest first
//	@Tags			history
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Param			limit	query		int		false	"max records, up to 50"
//	@Success		200		{object}	object{data=[]history.Record}
//	@Failure		400
//	@Router			/history/{address} [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		limit = n
	}

	res, err := h.history.List(ctx, address, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
