package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	"github.com/x-xyz/listingsync/base/database/redisclient"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/base/reconciler"
	"github.com/x-xyz/listingsync/domain"
	hcdomain "github.com/x-xyz/listingsync/domain/healthcheck"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/reconcile"
	mmiddleware "github.com/x-xyz/listingsync/middleware"
	"github.com/x-xyz/listingsync/service/chain"
	"github.com/x-xyz/listingsync/service/chain/contract"
	"github.com/x-xyz/listingsync/service/notifier"
	"github.com/x-xyz/listingsync/service/query"
	"github.com/x-xyz/listingsync/service/redis"
	hc_delivery "github.com/x-xyz/listingsync/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/listingsync/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/listingsync/stores/healthcheck/usecase"
	history_repository "github.com/x-xyz/listingsync/stores/history/repository"
	history_usecase "github.com/x-xyz/listingsync/stores/history/usecase"
	listing_repository "github.com/x-xyz/listingsync/stores/listing/repository"
	listing_usecase "github.com/x-xyz/listingsync/stores/listing/usecase"
	reconcile_usecase "github.com/x-xyz/listingsync/stores/reconcile/usecase"
)

func init() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = `infra/configs/config.yaml`
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	log.SetLevel(viper.GetString("log_level"))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	interval := viper.GetDuration("reconcile.interval")
	ctx.WithFields(log.Fields{
		"chainId":     viper.GetInt32("chain.id"),
		"rpcUrl":      viper.GetString("chain.rpcUrl"),
		"marketplace": viper.GetString("contracts.marketplace"),
		"backend":     viper.GetString("store.backend"),
		"interval":    interval,
	}).Info("config")

	ctx.Info("init redis")
	redisName := viper.GetString("redis.name")
	redisPool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
		DB:             viper.GetInt("redis.db"),
	})
	redisService := redis.New(redisName, metrics.New(redisName), &redis.Pools{
		Src: redisPool,
	})
	pingers := []hcdomain.HealthCheckRepo{hc_repo.NewRedis(redisService)}

	ctx.Info("connecting chain")
	chainService, err := chain.NewClient(ctx, chain.ClientCfg{
		ChainId:            domain.ChainId(viper.GetInt32("chain.id")),
		RpcUrl:             viper.GetString("chain.rpcUrl"),
		MaxConcurrentCalls: viper.GetInt("chain.maxConcurrentCalls"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("chain.NewClient failed")
	}
	pingers = append(pingers, hc_repo.NewChain(chainService))
	marketplaceContract := contract.NewMarketplace(chainService, domain.Address(viper.GetString("contracts.marketplace")))

	listingRepo, storePinger := initStore(ctx, redisService)
	if storePinger != nil {
		pingers = append(pingers, storePinger)
	}

	saleNotifier, err := notifier.New(notifier.Config{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		AssetUrl:  viper.GetString("discord.assetUrl"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("notifier.New failed")
	}

	history := history_usecase.New(history_repository.NewRedisRepo(redisService))
	listingUsecase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:      listingRepo,
		Observers: []listing.StatusObserver{history_usecase.NewRecorder(history), saleNotifier},
	})
	reconcileUsecase := reconcile_usecase.New(&reconcile_usecase.ReconcileUseCaseCfg{
		Listing:     listingUsecase,
		Oracle:      marketplaceContract,
		ReadTimeout: viper.GetDuration("reconcile.readTimeout"),
		Concurrency: viper.GetInt("reconcile.concurrency"),
	})

	errCh := make(chan error, 10)
	worker := reconciler.NewWorker(&reconciler.WorkerCfg{
		Reconcile: reconcileUsecase,
		Interval:  interval,
		ErrorCh:   errCh,
	})

	e := startEchoServer(ctx, hc_usecase.New(pingers...), worker)

	ctx.WithField("interval", worker.Interval()).Info("starting reconciler")
	worker.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
FOR:
	for {
		select {
		case err := <-errCh:
			ctx.WithField("err", err).Error("reconciler error")
		case sig := <-quit:
			ctx.WithField("signal", sig).Info("received signal")
			break FOR
		}
	}

	go func() {
		for range errCh {
		}
	}()
	cancel()
	worker.Wait()

	shutdownCtx, shutdownCancel := bCtx.WithTimeout(bCtx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	}
}

func initStore(ctx bCtx.Ctx, redisService redis.Service) (listing.Repo, hcdomain.HealthCheckRepo) {
	switch backend := viper.GetString("store.backend"); backend {
	case "mongo":
		mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:                viper.GetString("mongo.uri"),
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			SSL:                viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: viper.GetFloat64("mongo.poolSizeMultiplier"),
		})
		repo, err := listing_repository.NewMongoRepo(ctx, query.New(mongoClient, viper.GetBool("mongo.checkIndex")))
		if err != nil {
			ctx.WithField("err", err).Panic("listing_repository.NewMongoRepo failed")
		}
		return repo, hc_repo.NewMongo(mongoClient)
	case "redis":
		return listing_repository.NewRedisRepo(redisService), nil
	default:
		// a memory store is private to this process, passes only see what it created
		ctx.WithField("backend", backend).Warn("reconciler running on a memory store")
		return listing_repository.NewMemoryRepo(), nil
	}
}

type lastPassResp struct {
	At     *time.Time        `json:"at,omitempty"`
	Error  string            `json:"error,omitempty"`
	Report *reconcile.Report `json:"report,omitempty"`
}

// startEchoServer serves health and the latest pass for liveness probes
func startEchoServer(ctx bCtx.Ctx, hc hcdomain.HealthCheckUsecase, worker *reconciler.Worker) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	hc_delivery.New(e, hc)
	e.GET("/reconcile/last", func(c echo.Context) error {
		report, at, err := worker.LastPass()
		resp := lastPassResp{Report: report}
		if !at.IsZero() {
			resp.At = &at
		}
		if err != nil {
			resp.Error = err.Error()
		}
		return c.JSON(http.StatusOK, resp)
	})

	address := viper.GetString("health.address")
	ctx.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			ctx.WithField("err", err).Error("shutting down the server")
		}
	}()
	return e
}
