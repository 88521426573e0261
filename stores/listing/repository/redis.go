package repository

import (
	"encoding/json"
	"strconv"
	"time"

	redigo "github.com/gomodule/redigo/redis"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/service/redis"
)

// Every key shares the {listing} hash tag so the scripts below touch one slot.
// The record json is immutable, status and updatedAt live in their own hashes.
var (
	keyRecords = keys.RedisLuaKey(keys.PfxListing) + ":records"
	keyStatus  = keys.RedisLuaKey(keys.PfxListing) + ":status"
	keyUpdated = keys.RedisLuaKey(keys.PfxListing) + ":updated"
	keySeller  = keys.RedisLuaKey(keys.PfxListing) + ":seller"
	keyOnChain = keys.RedisLuaKey(keys.PfxListing) + ":onchain"
	keyAll     = keys.RedisLuaKey(keys.PfxListing) + ":all"
	keyActive  = keys.RedisLuaKey(keys.PfxListing) + ":active"
)

func keySellerActive(seller domain.Address) string {
	return keys.RedisLuaKey(keys.PfxListing) + ":seller:" + seller.ToLowerStr() + ":active"
}

const (
	replyOk       = "ok"
	replySame     = "same"
	replyExists   = "exists"
	replyNotFound = "notfound"
	replyInvalid  = "invalid"
)

var createScript = redis.NewScript(8, `
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return 'exists'
end
if ARGV[6] ~= '' and redis.call('HSETNX', KEYS[5], ARGV[6], ARGV[1]) == 0 then
	return 'exists'
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
redis.call('HSET', KEYS[3], ARGV[1], ARGV[4])
redis.call('HSET', KEYS[4], ARGV[1], ARGV[5])
redis.call('ZADD', KEYS[6], ARGV[7], ARGV[1])
if ARGV[3] == 'active' then
	redis.call('ZADD', KEYS[7], ARGV[7], ARGV[1])
	redis.call('ZADD', KEYS[8], ARGV[7], ARGV[1])
end
return 'ok'
`)

// only active moves, and never back to active
var transitionScript = redis.NewScript(4, `
local cur = redis.call('HGET', KEYS[1], ARGV[1])
if not cur then
	return 'notfound'
end
if cur == ARGV[2] then
	return 'same'
end
if cur ~= 'active' or ARGV[2] == 'active' then
	return 'invalid'
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
redis.call('ZREM', KEYS[3], ARGV[1])
redis.call('ZREM', KEYS[4], ARGV[1])
return 'ok'
`)

type redisRepo struct {
	redis redis.Service
}

func NewRedisRepo(redis redis.Service) listing.Repo {
	return &redisRepo{redis}
}

func millis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func (r *redisRepo) Create(c ctx.Ctx, l *listing.Listing) error {
	record := clone(l)
	record.Normalize()
	bytes, err := json.Marshal(record)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return err
	}
	onChainId := ""
	if record.OnChainListingId != nil {
		onChainId = strconv.FormatInt(*record.OnChainListingId, 10)
	}

	reply, err := redigo.String(r.redis.Eval(c, createScript,
		keyRecords, keyStatus, keyUpdated, keySeller, keyOnChain, keyAll, keyActive, keySellerActive(record.Seller),
		record.Id, bytes, string(record.Status), strconv.FormatInt(millis(record.UpdatedAt), 10), record.Seller.ToLowerStr(), onChainId, millis(record.CreatedAt),
	))
	if err != nil {
		c.WithField("err", err).WithField("id", l.Id).Error("createScript failed")
		return unavailable(err)
	}
	if reply == replyExists {
		return domain.ErrConflict
	}
	return nil
}

func (r *redisRepo) load(c ctx.Ctx, ids []string) ([]*listing.Listing, error) {
	if len(ids) == 0 {
		return []*listing.Listing{}, nil
	}
	records, err := r.redis.HMGet(c, keyRecords, ids...)
	if err != nil {
		return nil, unavailable(err)
	}
	statuses, err := r.redis.HMGet(c, keyStatus, ids...)
	if err != nil {
		return nil, unavailable(err)
	}
	updated, err := r.redis.HMGet(c, keyUpdated, ids...)
	if err != nil {
		return nil, unavailable(err)
	}

	res := make([]*listing.Listing, 0, len(ids))
	for i := range ids {
		if records[i] == nil {
			continue
		}
		l := &listing.Listing{}
		if err := json.Unmarshal(records[i], l); err != nil {
			c.WithField("err", err).WithField("id", ids[i]).Warn("json.Unmarshal failed")
			continue
		}
		if statuses[i] != nil {
			l.Status = listing.Status(statuses[i])
		}
		if updated[i] != nil {
			if ms, err := strconv.ParseInt(string(updated[i]), 10, 64); err == nil {
				l.UpdatedAt = time.Unix(0, ms*int64(time.Millisecond)).UTC()
			}
		}
		l.Normalize()
		res = append(res, l)
	}
	return res, nil
}

func (r *redisRepo) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	ls, err := r.load(c, []string{id})
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("load failed")
		return nil, err
	}
	if len(ls) == 0 {
		return nil, domain.ErrNotFound
	}
	return ls[0], nil
}

// candidates narrows the ids to load with the sorted sets, opts still filters them
func (r *redisRepo) candidates(c ctx.Ctx, opts listing.FindAllOptions) ([]string, error) {
	if opts.OnChainListingId != nil {
		id, err := r.redis.HGet(c, keyOnChain, strconv.FormatInt(*opts.OnChainListingId, 10))
		if err == redis.ErrNotFound {
			return []string{}, nil
		} else if err != nil {
			return nil, err
		}
		return []string{string(id)}, nil
	}
	if opts.Status != nil && *opts.Status == listing.StatusActive {
		if opts.Seller != nil {
			return r.redis.ZRevrange(c, keySellerActive(*opts.Seller), 0, 0)
		}
		return r.redis.ZRevrange(c, keyActive, 0, 0)
	}
	return r.redis.ZRevrange(c, keyAll, 0, 0)
}

func (r *redisRepo) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}
	ids, err := r.candidates(c, opts)
	if err != nil {
		c.WithField("err", err).Error("candidates failed")
		return nil, unavailable(err)
	}
	ls, err := r.load(c, ids)
	if err != nil {
		c.WithField("err", err).Error("load failed")
		return nil, err
	}
	return opts.Apply(ls), nil
}

func (r *redisRepo) UpdateStatus(c ctx.Ctx, id string, status listing.Status) (*listing.Listing, bool, error) {
	seller, err := r.redis.HGet(c, keySeller, id)
	if err == redis.ErrNotFound {
		return nil, false, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("redis.HGet failed")
		return nil, false, unavailable(err)
	}

	reply, err := redigo.String(r.redis.Eval(c, transitionScript,
		keyStatus, keyUpdated, keyActive, keySellerActive(domain.Address(seller)),
		id, string(status), strconv.FormatInt(millis(timeNow()), 10),
	))
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("transitionScript failed")
		return nil, false, unavailable(err)
	}
	if reply == replyNotFound {
		return nil, false, domain.ErrNotFound
	}

	l, err := r.FindOne(c, id)
	if err != nil {
		return nil, false, err
	}
	switch reply {
	case replyOk:
		return l, true, nil
	case replySame:
		return l, false, nil
	default:
		return l, false, domain.ErrInvalidStatusTransition
	}
}
