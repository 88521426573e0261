package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/delivery"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/middleware"
	"github.com/x-xyz/listingsync/service/ens"
)

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{
		ens,
	}

	g := e.Group("ens")

	g.GET("/reverse-resolve/:address", h.ReverseResolve, middleware.IsValidAddress("address"))
}

// ReverseResolve
//
//	@Summary		Get ens name
//	@Description	Primary ens name of an address, empty when none is set
//	@Tags			ens
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Router			/ens/reverse-resolve/{address} [get]
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name, err := h.ens.ReverseResolve(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
