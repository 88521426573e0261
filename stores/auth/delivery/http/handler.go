package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/delivery"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/middleware"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.GET("/nonce/:address", handler.nonce, middleware.IsValidAddress("address"))
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

// nonce
//
//	@Summary		Get login nonce
//	@Description	Issue a single use nonce to be signed with the signing message template
//	@Tags			auth
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Router			/auth/nonce/{address} [get]
func (h *authHandler) nonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	if nonce, err := h.auth.IssueNonce(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, nonce)
	}
}

type signParams struct {
	Address   domain.Address `json:"address" validate:"required,address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"`
	Signature string         `json:"signature" validate:"required"`
}

// sign
//
//	@Summary		Get access token
//	@Description	Exchange a signed nonce for an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.signParams	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		401
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &signParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if tkn, err := h.auth.Login(ctx, p.Address, p.Signature); err != nil {
		ctx.WithField("err", err).Warn("auth.Login failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getSigningMsgTemplate
//
//	@Summary		Get signature template
//	@Description	Replace %s with the nonce from /auth/nonce to build the signing message
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{template=string}	"signing message template"
//	@Router			/auth/signingMsgTemplate [get]
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: domain.SigningMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
