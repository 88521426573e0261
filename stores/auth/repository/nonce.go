package repository

import (
	"time"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/service/redis"
)

const nonceTTL = 10 * time.Minute

type nonceRepo struct {
	redis redis.Service
}

func NewNonceRepo(redis redis.Service) domain.NonceRepo {
	return &nonceRepo{redis}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}

func (r *nonceRepo) Set(c ctx.Ctx, address domain.Address, nonce string) error {
	if err := r.redis.Set(c, nonceKey(address), []byte(nonce), nonceTTL); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return err
	}
	return nil
}

func (r *nonceRepo) Pop(c ctx.Ctx, address domain.Address) (string, error) {
	key := nonceKey(address)
	val, err := r.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return "", err
	}
	if _, err := r.redis.Del(c, key); err != nil {
		c.WithField("err", err).Error("redis.Del failed")
		return "", err
	}
	return string(val), nil
}
