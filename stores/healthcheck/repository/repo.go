package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	hcdomain "github.com/x-xyz/listingsync/domain/healthcheck"
	"github.com/x-xyz/listingsync/domain/keys"
	"github.com/x-xyz/listingsync/service/chain"
	"github.com/x-xyz/listingsync/service/redis"
)

type mongoPinger struct {
	mgoClient *mongoclient.Client
}

func NewMongo(mgoClient *mongoclient.Client) hcdomain.HealthCheckRepo {
	return &mongoPinger{mgoClient}
}

func (p *mongoPinger) Name() string {
	return "mongo"
}

func (p *mongoPinger) Ping(context ctx.Ctx) error {
	if err := p.mgoClient.Ping(context, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

type redisPinger struct {
	redis redis.Service
}

func NewRedis(redis redis.Service) hcdomain.HealthCheckRepo {
	return &redisPinger{redis}
}

func (p *redisPinger) Name() string {
	return "redis"
}

func (p *redisPinger) Ping(context ctx.Ctx) error {
	if err := p.redis.Set(context, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}

type chainPinger struct {
	client chain.Client
}

func NewChain(client chain.Client) hcdomain.HealthCheckRepo {
	return &chainPinger{client}
}

func (p *chainPinger) Name() string {
	return "chain"
}

func (p *chainPinger) Ping(context ctx.Ctx) error {
	if _, err := p.client.BlockNumber(context); err != nil {
		context.WithField("err", err).Error("chain BlockNumber failed")
		return err
	}
	return nil
}
