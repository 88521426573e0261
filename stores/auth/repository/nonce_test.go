package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/service/redis"
	mockRedis "github.com/x-xyz/listingsync/service/redis/mocks"
)

func TestNonceRepo(t *testing.T) {
	c := ctx.Background()
	rd := mockRedis.NewService(t)
	repo := NewNonceRepo(rd)
	addr := domain.Address("0xABCD")

	rd.On("Set", c, "nonce:0xabcd", []byte("n1"), nonceTTL).Return(nil).Once()
	require.NoError(t, repo.Set(c, addr, "n1"))

	rd.On("Get", c, "nonce:0xabcd").Return([]byte("n1"), nil).Once()
	rd.On("Del", c, "nonce:0xabcd").Return(1, nil).Once()
	nonce, err := repo.Pop(c, addr)
	require.NoError(t, err)
	require.Equal(t, "n1", nonce)

	rd.On("Get", c, "nonce:0xabcd").Return(nil, redis.ErrNotFound).Once()
	_, err = repo.Pop(c, addr)
	require.Equal(t, domain.ErrNotFound, err)
}
