package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/service/cache/provider"
	"github.com/x-xyz/listingsync/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound([]provider.Provider{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "ens:0xabc"
	v := []byte("alice.eth")

	ts.NoError(ts.im.Set(mockCtx, k, v, 10*time.Second))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)
}

func (ts *testsuite) TestGetFillsFasterLayer() {
	k := "ens:0xdef"
	v := []byte("bob.eth")

	ts.NoError(ts.lyr1.Set(mockCtx, k, v, 10*time.Second))
	_, _, e := ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)

	got, _, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, got)

	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
}

func (ts *testsuite) TestMiss() {
	_, _, e := ts.im.Get(mockCtx, "nothing")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestDel() {
	k := "ens:0x123"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("x"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, k))
	_, _, e := ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}
