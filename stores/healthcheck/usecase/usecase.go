package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/base/ctx"
	hcdomain "github.com/x-xyz/listingsync/domain/healthcheck"
)

const pingTimeout = 2 * time.Second

type impl struct {
	repos []hcdomain.HealthCheckRepo
}

// New checks every repo in order
func New(repos ...hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repos: repos,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	for _, repo := range im.repos {
		c, cancel := ctx.WithTimeout(context, pingTimeout)
		err := repo.Ping(c)
		cancel()
		if err != nil {
			return xerrors.Errorf("%s: %w", repo.Name(), err)
		}
	}
	return nil
}
