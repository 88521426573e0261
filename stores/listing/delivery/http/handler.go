package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/delivery"
	"github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/marketplace"
	"github.com/x-xyz/listingsync/domain/reconcile"
	"github.com/x-xyz/listingsync/middleware"
	"github.com/x-xyz/listingsync/service/ens"
	authMiddleware "github.com/x-xyz/listingsync/stores/auth/delivery/http/middleware"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type HandlerCfg struct {
	Listing     listing.UseCase
	Marketplace marketplace.UseCase
	Reconcile   reconcile.UseCase
	// Ens resolves seller names, optional
	Ens            ens.ENS
	AuthMiddleware *authMiddleware.AuthMiddleware
	// CacheTtl of the stats response, no cache when zero
	CacheTtl time.Duration
}

type handler struct {
	listing     listing.UseCase
	marketplace marketplace.UseCase
	reconcile   reconcile.UseCase
	ens         ens.ENS
}

func New(e *echo.Echo, cfg *HandlerCfg) {
	h := &handler{
		listing:     cfg.Listing,
		marketplace: cfg.Marketplace,
		reconcile:   cfg.Reconcile,
		ens:         cfg.Ens,
	}

	statsMiddlewares := []echo.MiddlewareFunc{}
	if cfg.CacheTtl > 0 {
		statsMiddlewares = append(statsMiddlewares, middleware.CacheHttp(cfg.CacheTtl))
	}

	g := e.Group("/listings")
	g.GET("", h.list)
	g.GET("/stats", h.stats, statsMiddlewares...)
	g.GET("/:id", h.get)
	g.POST("", h.register, cfg.AuthMiddleware.Auth())
	g.POST("/:id/cancel", h.cancel, cfg.AuthMiddleware.Auth())
	g.POST("/:id/sold", h.sold, cfg.AuthMiddleware.Auth())

	e.GET("/accounts/:address/listings", h.listBySeller, middleware.IsValidAddress("address"))
}

type listingView struct {
	*listing.Listing
	Verifiable bool `json:"verifiable"`
}

type listingsResp struct {
	Items []*listingView `json:"items"`
	// Stale is set when the store is unreachable and Items is empty
	Stale bool `json:"stale"`
	// Reconciled is set when the page was checked against the chain
	Reconciled bool `json:"reconciled"`
}

type detailResp struct {
	*listing.Listing
	Verifiable   bool                        `json:"verifiable"`
	SellerName   string                      `json:"sellerName,omitempty"`
	OnChain      *marketplace.OnChainListing `json:"onChain,omitempty"`
	OnChainError string                      `json:"onChainError,omitempty"`
}

type listParams struct {
	Search        string         `query:"search"`
	AssetContract domain.Address `query:"assetContract"`
	TokenId       domain.TokenId `query:"tokenId"`
	SortBy        listing.SortBy `query:"sortBy"`
	Offset        int            `query:"offset"`
	Limit         int            `query:"limit"`
	Verify        bool           `query:"verify"`
}

func (p *listParams) options() []listing.FindAllOptionsFunc {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	opts := []listing.FindAllOptionsFunc{
		listing.WithSearch(p.Search),
		listing.WithSort(p.SortBy),
		listing.WithPagination(p.Offset, limit),
	}
	if p.AssetContract != "" {
		opts = append(opts, listing.WithAssetContract(p.AssetContract))
	}
	if p.TokenId != "" {
		opts = append(opts, listing.WithTokenId(p.TokenId))
	}
	return opts
}

func toViews(ls []*listing.Listing) []*listingView {
	res := make([]*listingView, 0, len(ls))
	for _, l := range ls {
		if !l.IsActive() {
			continue
		}
		res = append(res, &listingView{l, l.Verifiable()})
	}
	return res
}

// list
//
//	@Summary		List active listings
//	@Description	Active listings, newest first unless sorted otherwise. verify=true checks the page against the chain first.
//	@Tags			listings
//	@Produce		json
//	@Param			search			query		string	false	"collection name or token id"
//	@Param			assetContract	query		string	false	"asset contract"
//	@Param			tokenId			query		string	false	"token id"
//	@Param			sortBy	query		string	false	"newest, oldest, price-low or price-high"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit, up to 200"
//	@Param			verify	query		bool	false	"reconcile the page"
//	@Success		200		{object}	object{data=http.listingsResp}
//	@Failure		400
//	@Router			/listings [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	ls, err := h.listing.ListActive(ctx, p.options()...)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		ctx.WithField("err", err).Warn("listing store unavailable, serving empty list")
		return delivery.MakeJsonResp(c, http.StatusOK, &listingsResp{Items: []*listingView{}, Stale: true})
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	resp := &listingsResp{}
	if p.Verify && h.reconcile != nil {
		if _, err := h.reconcile.Reconcile(ctx, ls); err != nil {
			ctx.WithField("err", err).Warn("reconcile.Reconcile failed")
		} else {
			resp.Reconciled = true
		}
	}
	resp.Items = toViews(ls)
	return delivery.MakeJsonResp(c, http.StatusOK, resp)
}

// listBySeller
//
//	@Summary		List active listings of a seller
//	@Tags			listings
//	@Produce		json
//	@Param			address	path		string	true	"seller address"
//	@Param			sortBy	query		string	false	"newest, oldest, price-low or price-high"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit, up to 200"
//	@Success		200		{object}	object{data=http.listingsResp}
//	@Failure		400
//	@Router			/accounts/{address}/listings [get]
func (h *handler) listBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	p := &listParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	ls, err := h.listing.ListBySeller(ctx, address, p.options()...)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		ctx.WithField("err", err).Warn("listing store unavailable, serving empty list")
		return delivery.MakeJsonResp(c, http.StatusOK, &listingsResp{Items: []*listingView{}, Stale: true})
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &listingsResp{Items: toViews(ls)})
}

// stats
//
//	@Summary		Listing stats
//	@Description	Active count, floor price and total listed value. seller adds the seller's active count.
//	@Tags			listings
//	@Produce		json
//	@Param			seller	query		string	false	"seller address"
//	@Success		200		{object}	object{data=listing.Stats}
//	@Failure		400
//	@Failure		503
//	@Router			/listings/stats [get]
func (h *handler) stats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	var seller *domain.Address
	if s := c.QueryParam("seller"); s != "" {
		if !validator.IsValidAddress(s) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		seller = domain.Address(s).ToLowerPtr()
	}

	stats, err := h.listing.Stats(ctx, seller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, stats)
}

// get
//
//	@Summary		Get a listing
//	@Description	The record with its live on-chain view when verifiable
//	@Tags			listings
//	@Produce		json
//	@Param			id		path		string	true	"listing id"
//	@Param			live	query		bool	false	"read the contract, default true"
//	@Success		200		{object}	object{data=http.detailResp}
//	@Failure		404
//	@Router			/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	l, err := h.listing.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	resp := &detailResp{Listing: l, Verifiable: l.Verifiable()}
	if h.ens != nil {
		if name, err := h.ens.ReverseResolve(ctx, l.Seller); err == nil {
			resp.SellerName = name
		}
	}
	if l.Verifiable() && c.QueryParam("live") != "false" {
		if onChain, err := h.marketplace.CheckListing(ctx, *l.OnChainListingId); err != nil {
			resp.OnChainError = err.Error()
		} else {
			resp.OnChain = onChain
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp)
}

type registerParams struct {
	OnChainListingId *int64 `json:"onChainListingId" validate:"required,min=0"`
	CollectionName   string `json:"collectionName"`
}

// register
//
//	@Summary		Index an on-chain listing
//	@Description	Registers a listing already confirmed on chain. The caller must be its seller.
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.registerParams	true	"params"
//	@Success		201		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/listings [post]
func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &registerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	l, err := h.marketplace.RegisterListing(ctx, address, *p.OnChainListingId, p.CollectionName)
	if err != nil {
		ctx.WithField("err", err).Warn("marketplace.RegisterListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

// cancel
//
//	@Summary		Cancel a listing
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=listing.Listing}
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Router			/listings/{id}/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)
	id := c.Param("id")

	if err := h.marketplace.Cancel(ctx, address, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	l, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// sold
//
//	@Summary		Report a purchase
//	@Description	Marks the listing sold once the contract reports it inactive
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=listing.Listing}
//	@Failure		404
//	@Failure		409
//	@Router			/listings/{id}/sold [post]
func (h *handler) sold(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	l, err := h.marketplace.ConfirmPurchase(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}
