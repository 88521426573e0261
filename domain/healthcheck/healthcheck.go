package healthcheck

import (
	"github.com/x-xyz/listingsync/base/ctx"
)

type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo pings one dependency
type HealthCheckRepo interface {
	Name() string
	Ping(context ctx.Ctx) error
}
