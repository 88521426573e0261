package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/domain/keys"
)

const (
	// TTL reply when the key does not exist
	retTTLNoKey = -2
	// TTL reply when the key exists without expiry
	retTTLNoExpire = -1
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New wraps the pools with metrics and logging
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) getConn(context ctx.Ctx) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn, err := r.pools.Src.GetContext(context)
	if err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(context)
	if err != nil {
		return nil, err
	}
	reply, err := conn.Do(commandName, args...)
	// release asap so the pool holds fewer connections
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) logErr(context ctx.Ctx, msg, key string, err error) {
	if err != nil && err != ErrNotFound {
		context.WithField("err", err).WithField("key", key).Error(msg)
	}
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	r.logErr(context, "GET redis failed", key, err)
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, err
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "PX", expire.Milliseconds())
	}
	r.logErr(context, "SET redis failed", key, err)
	return err
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}
	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()

	n, err := redis.Int(r.connDo(context, "DEL", redis.Args{}.AddFlat(ks)...))
	r.logErr(context, "DEL redis failed", ks[0], err)
	return n, err
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (time.Duration, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()

	ttl, err := redis.Int64(r.connDo(context, "TTL", key))
	if err != nil {
		r.logErr(context, "TTL redis failed", key, err)
		return 0, err
	}
	switch ttl {
	case retTTLNoKey:
		return 0, ErrNotFound
	case retTTLNoExpire:
		return Forever, nil
	}
	return time.Duration(ttl) * time.Second, nil
}

func (r *redImpl) HGet(context ctx.Ctx, key, field string) ([]byte, error) {
	tags := r.tags("hget", key)
	defer r.met.BumpTime("time", tags...).End()

	b, err := redis.Bytes(r.connDo(context, "HGET", key, field))
	r.logErr(context, "HGET redis failed", key, err)
	r.met.BumpHistogram("bytes", float64(len(b)), tags...)
	return b, err
}

func (r *redImpl) HMGet(context ctx.Ctx, key string, fields ...string) ([][]byte, error) {
	if len(fields) == 0 {
		return [][]byte{}, nil
	}
	tags := r.tags("hmget", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(fields)), tags...)

	vals, err := redis.ByteSlices(r.connDo(context, "HMGET", redis.Args{}.Add(key).AddFlat(fields)...))
	r.logErr(context, "HMGET redis failed", key, err)
	return vals, err
}

func (r *redImpl) ZRevrange(context ctx.Ctx, key string, offset, count int) ([]string, error) {
	tags := r.tags("zrevrange", key)
	defer r.met.BumpTime("time", tags...).End()

	stop := -1
	if count > 0 {
		stop = offset + count - 1
	}
	val, err := redis.Strings(r.connDo(context, "ZREVRANGE", key, offset, stop))
	r.logErr(context, "ZREVRANGE redis failed", key, err)
	r.met.BumpHistogram("elements", float64(len(val)), tags...)
	return val, err
}

func (r *redImpl) LPush(context ctx.Ctx, key string, val []byte) error {
	tags := r.tags("lpush", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	_, err := r.connDo(context, "LPUSH", key, val)
	r.logErr(context, "LPUSH redis failed", key, err)
	return err
}

func (r *redImpl) LTrim(context ctx.Ctx, key string, start, end int) error {
	defer r.met.BumpTime("time", r.tags("ltrim", key)...).End()

	_, err := r.connDo(context, "LTRIM", key, start, end)
	r.logErr(context, "LTRIM redis failed", key, err)
	return err
}

func (r *redImpl) LRange(context ctx.Ctx, key string, offset, count int) ([][]byte, error) {
	tags := r.tags("lrange", key)
	defer r.met.BumpTime("time", tags...).End()

	stop := -1
	if count > 0 {
		stop = offset + count - 1
	}
	val, err := redis.ByteSlices(r.connDo(context, "LRANGE", key, offset, stop))
	r.logErr(context, "LRANGE redis failed", key, err)
	r.met.BumpHistogram("elements", float64(len(val)), tags...)
	return val, err
}

func (r *redImpl) Eval(context ctx.Ctx, script *Script, keysAndArgs ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("time", "func", "eval", "cluster", r.name).End()

	conn, err := r.getConn(context)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	reply, err := script.Do(conn, keysAndArgs...)
	if err != nil && err != ErrNotFound {
		context.WithField("err", err).Error("EVAL redis failed")
	}
	return reply, err
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	_, err := r.connDo(context, "PING")
	return err
}
