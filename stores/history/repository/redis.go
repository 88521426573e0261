package repository

import (
	"encoding/json"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/service/redis"
)

type redisRepo struct {
	redis redis.Service
}

// NewRedisRepo keeps each account's history in a capped redis list, newest first
func NewRedisRepo(redis redis.Service) history.Repo {
	return &redisRepo{redis}
}

func historyKey(account domain.Address) string {
	return keys.RedisKey(keys.PfxHistory, account.ToLowerStr())
}

func (r *redisRepo) Append(c ctx.Ctx, rec *history.Record) error {
	val, err := json.Marshal(rec)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return err
	}
	key := historyKey(rec.Account)
	if err := r.redis.LPush(c, key, val); err != nil {
		return domain.ErrStoreUnavailable
	}
	if err := r.redis.LTrim(c, key, 0, history.MaxRecords-1); err != nil {
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (r *redisRepo) FindAll(c ctx.Ctx, account domain.Address, limit int) ([]*history.Record, error) {
	vals, err := r.redis.LRange(c, historyKey(account), 0, limit)
	if err == redis.ErrNotFound {
		return []*history.Record{}, nil
	} else if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	res := make([]*history.Record, 0, len(vals))
	for _, val := range vals {
		rec := &history.Record{}
		if err := json.Unmarshal(val, rec); err != nil {
			c.WithFields(log.Fields{"err": err, "account": account}).Warn("skip malformed history record")
			continue
		}
		res = append(res, rec)
	}
	return res, nil
}
