package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/service/cache/provider"
	"github.com/x-xyz/listingsync/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type sellerName struct {
	Name string `json:"name"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   keys.PfxEns,
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "0xabc"
		v = sellerName{"alice.eth"}
		c = &sellerName{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSetDel() {
	k := "0xabc"
	ts.NoError(ts.im.Set(mockCtx, k, sellerName{"alice.eth"}))

	c := &sellerName{}
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal("alice.eth", c.Name)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &sellerName{"bob.eth"}, nil
	}

	c := &sellerName{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "0xdef", c, getter))
	ts.Equal("bob.eth", c.Name)

	c2 := &sellerName{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "0xdef", c2, getter))
	ts.Equal("bob.eth", c2.Name)
	ts.Equal(1, calls)

	boom := errors.New("rpc down")
	ts.Equal(boom, ts.im.GetByFunc(mockCtx, "0x123", &sellerName{}, func() (interface{}, error) {
		return nil, boom
	}))
}
