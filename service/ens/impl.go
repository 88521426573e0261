package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/ptr"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/service/cache"
	"github.com/x-xyz/listingsync/service/cache/provider"
	"github.com/x-xyz/listingsync/service/cache/provider/compound"
	"github.com/x-xyz/listingsync/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/listingsync/service/cache/provider/redis"
	"github.com/x-xyz/listingsync/service/redis"
)

type reverseFunc func(backend bind.ContractBackend, address common.Address) (string, error)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service
	reverse reverseFunc
}

// New caches names in process and, when redis is given, in redis for a week
func New(backend bind.ContractBackend, redis redis.Service) ENS {
	layers := []provider.Provider{primitive.NewPrimitive("ens", 8)}
	if redis != nil {
		layers = append(layers, redisCache.NewRedis(redis))
	}
	return &impl{
		backend: backend,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   7 * 24 * time.Hour,
			Pfx:   keys.PfxEns,
			Cache: compound.NewCompound(layers),
		}),
		reverse: goens.ReverseResolve,
	}
}

// errors goens returns for addresses without a primary name
func isUnnamed(err error) bool {
	switch fmt.Sprint(err) {
	case "not a resolver", "no resolver", "no resolution", "unregistered name":
		return true
	}
	return false
}

func (im *impl) ReverseResolve(c ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		name, err := im.reverse(im.backend, common.HexToAddress(string(address)))
		if isUnnamed(err) {
			return ptr.String(""), nil
		} else if err != nil {
			c.WithField("err", err).WithField("address", address).Error("goens.ReverseResolve failed")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return "", err
	}
	return res, nil
}
