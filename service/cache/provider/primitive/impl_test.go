package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), 10*time.Second))
	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.True(ttl > 0 && ttl <= 10*time.Second)
}

func (ts *testsuite) TestExpire() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Second))
	time.Sleep(1100 * time.Millisecond)
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
