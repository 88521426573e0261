package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/listingsync/base/ctx"
)

const (
	// Forever means the key never expires
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key or field does not exist
	ErrNotFound = redis.ErrNil
)

// Script is a lua script, loaded by sha on first use
type Script = redis.Script

// NewScript prepares src that touches keyCount keys
func NewScript(keyCount int, src string) *Script {
	return redis.NewScript(keyCount, src)
}

type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL in seconds, Forever when the key has no expiry
	TTL(context ctx.Ctx, key string) (time.Duration, error)

	HGet(context ctx.Ctx, key, field string) ([]byte, error)
	// HMGet returns nil entries for missing fields
	HMGet(context ctx.Ctx, key string, fields ...string) ([][]byte, error)

	// ZRevrange returns members from the highest score, count <= 0 means all
	ZRevrange(context ctx.Ctx, key string, offset, count int) ([]string, error)

	LPush(context ctx.Ctx, key string, val []byte) error
	LTrim(context ctx.Ctx, key string, start, end int) error
	LRange(context ctx.Ctx, key string, offset, count int) ([][]byte, error)

	// Eval runs script over keysAndArgs, keys first
	Eval(context ctx.Ctx, script *Script, keysAndArgs ...interface{}) (interface{}, error)

	Ping(context ctx.Ctx) error
}
