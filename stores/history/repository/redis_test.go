package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/history"
	"github.com/x-xyz/listingsync/service/redis"
	mockRedis "github.com/x-xyz/listingsync/service/redis/mocks"
)

const account = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")

func TestAppend(t *testing.T) {
	c := ctx.Background()
	rd := mockRedis.NewService(t)
	repo := NewRedisRepo(rd)
	rec := &history.Record{Id: "h1", Account: account, Type: history.TxTypePurchase, Status: history.TxStatusConfirmed}
	val, _ := json.Marshal(rec)

	rd.On("LPush", c, "history:"+string(account), val).Return(nil).Once()
	rd.On("LTrim", c, "history:"+string(account), 0, history.MaxRecords-1).Return(nil).Once()
	require.NoError(t, repo.Append(c, rec))

	rd.On("LPush", c, mock.Anything, mock.Anything).Return(redis.ErrNotFound).Once()
	require.Equal(t, domain.ErrStoreUnavailable, repo.Append(c, rec))
}

func TestFindAll(t *testing.T) {
	c := ctx.Background()
	rd := mockRedis.NewService(t)
	repo := NewRedisRepo(rd)
	newer, _ := json.Marshal(&history.Record{Id: "h2", Account: account, Type: history.TxTypeSold})
	older, _ := json.Marshal(&history.Record{Id: "h1", Account: account, Type: history.TxTypeList})

	rd.On("LRange", c, "history:"+string(account), 0, 10).Return([][]byte{newer, []byte("{"), older}, nil).Once()
	res, err := repo.FindAll(c, account, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "h2", res[0].Id)
	require.Equal(t, "h1", res[1].Id)

	rd.On("LRange", c, mock.Anything, 0, 10).Return(nil, redis.ErrNotFound).Once()
	res, err = repo.FindAll(c, account, 10)
	require.NoError(t, err)
	require.Empty(t, res)
}
