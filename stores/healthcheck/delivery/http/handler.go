package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingsync/base/ctx"
	hcdomain "github.com/x-xyz/listingsync/domain/healthcheck"
)

type unhealthyResp struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{
		healthCheck: us,
	}
	e.GET("/health", h.check)
}

// check
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200
//	@Failure	503	{object}	http.unhealthyResp	"first dependency that failed"
//	@Router		/health [get]
func (h *handler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		context.WithField("err", err).Warn("healthCheck.Check failed")
		return c.JSON(http.StatusServiceUnavailable, unhealthyResp{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{
		"healthy": true,
	})
}
