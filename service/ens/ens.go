package ens

import (
	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
)

// ENS resolves seller addresses to display names
type ENS interface {
	ReverseResolve(c ctx.Ctx, address domain.Address) (string, error)
}
