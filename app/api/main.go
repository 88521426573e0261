package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	"github.com/x-xyz/listingsync/base/database/redisclient"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	bValidator "github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
	hcdomain "github.com/x-xyz/listingsync/domain/healthcheck"
	"github.com/x-xyz/listingsync/domain/listing"
	mmiddleware "github.com/x-xyz/listingsync/middleware"
	"github.com/x-xyz/listingsync/service/chain"
	"github.com/x-xyz/listingsync/service/chain/contract"
	"github.com/x-xyz/listingsync/service/ens"
	"github.com/x-xyz/listingsync/service/notifier"
	"github.com/x-xyz/listingsync/service/query"
	"github.com/x-xyz/listingsync/service/redis"
	auth_delivery "github.com/x-xyz/listingsync/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/listingsync/stores/auth/delivery/http/middleware"
	auth_repository "github.com/x-xyz/listingsync/stores/auth/repository"
	auth_usecase "github.com/x-xyz/listingsync/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/listingsync/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/listingsync/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/listingsync/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/listingsync/stores/healthcheck/usecase"
	history_delivery "github.com/x-xyz/listingsync/stores/history/delivery/http"
	history_repository "github.com/x-xyz/listingsync/stores/history/repository"
	history_usecase "github.com/x-xyz/listingsync/stores/history/usecase"
	listing_delivery "github.com/x-xyz/listingsync/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/listingsync/stores/listing/repository"
	listing_usecase "github.com/x-xyz/listingsync/stores/listing/usecase"
	marketplace_usecase "github.com/x-xyz/listingsync/stores/marketplace/usecase"
	reconcile_usecase "github.com/x-xyz/listingsync/stores/reconcile/usecase"

	_ "github.com/x-xyz/listingsync/app/api/docs"
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

//	@title			Listing Sync API
//	@version		1.0
//	@description	Listing index of the marketplace contract, kept in step with the chain.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init Redis service
	context.Info("init redis")
	redisName := viper.GetString("redis.name")
	redisPool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
		DB:             viper.GetInt("redis.db"),
	})
	redisService := redis.New(redisName, metrics.New(redisName), &redis.Pools{
		Src: redisPool,
	})
	mmiddleware.SetupCache(redisService)
	pingers := []hcdomain.HealthCheckRepo{hc_repo.NewRedis(redisService)}

	// init chain service
	chainId := domain.ChainId(viper.GetInt32("chain.id"))
	chainService, err := chain.NewClient(context, chain.ClientCfg{
		ChainId:            chainId,
		RpcUrl:             viper.GetString("chain.rpcUrl"),
		MaxConcurrentCalls: viper.GetInt("chain.maxConcurrentCalls"),
		ReceiptPoll:        viper.GetDuration("chain.receiptPoll"),
		ReceiptTimeout:     viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	pingers = append(pingers, hc_repo.NewChain(chainService))
	marketplaceContract := contract.NewMarketplace(chainService, domain.Address(viper.GetString("contracts.marketplace")))
	erc1155Contract := contract.NewErc1155(chainService)

	// listing store
	backend := viper.GetString("store.backend")
	context.WithField("backend", backend).Info("init listing store")
	var listingRepo listing.Repo
	switch backend {
	case "mongo":
		mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:                viper.GetString("mongo.uri"),
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			SSL:                viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: viper.GetFloat64("mongo.poolSizeMultiplier"),
		})
		q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
		if listingRepo, err = listing_repository.NewMongoRepo(context, q); err != nil {
			context.WithField("err", err).Panic("listing_repository.NewMongoRepo failed")
		}
		pingers = append(pingers, hc_repo.NewMongo(mongoClient))
	case "redis":
		listingRepo = listing_repository.NewRedisRepo(redisService)
	default:
		listingRepo = listing_repository.NewMemoryRepo()
	}

	// ens names, resolved on mainnet
	var ensService ens.ENS
	if ensRpcUrl := viper.GetString("ens.rpcUrl"); ensRpcUrl != "" {
		ensClient, err := ethclient.DialContext(context, ensRpcUrl)
		if err != nil {
			context.WithField("err", err).Panic("ethclient.DialContext failed")
		}
		ensService = ens.New(ensClient, redisService)
	}

	saleNotifier, err := notifier.New(notifier.Config{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		AssetUrl:  viper.GetString("discord.assetUrl"),
		Ens:       ensService,
	})
	if err != nil {
		context.WithField("err", err).Panic("notifier.New failed")
	}

	// usecases
	history := history_usecase.New(history_repository.NewRedisRepo(redisService))
	listingUsecase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:      listingRepo,
		Observers: []listing.StatusObserver{history_usecase.NewRecorder(history), saleNotifier},
	})
	marketplaceUsecase := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		Marketplace: marketplaceContract,
		Erc1155:     erc1155Contract,
		Listing:     listingUsecase,
		History:     history,
	})
	reconcileUsecase := reconcile_usecase.New(&reconcile_usecase.ReconcileUseCaseCfg{
		Listing:     listingUsecase,
		Oracle:      marketplaceContract,
		ReadTimeout: viper.GetDuration("reconcile.readTimeout"),
		Concurrency: viper.GetInt("reconcile.concurrency"),
	})
	auth := auth_usecase.New(viper.GetString("jwt.secret"), auth_repository.NewNonceRepo(redisService))
	authMiddleware := auth_middleware.New(auth)

	// deliveries
	hc_delivery.New(e, hc_usecase.New(pingers...))
	auth_delivery.New(e, auth)
	listing_delivery.New(e, &listing_delivery.HandlerCfg{
		Listing:        listingUsecase,
		Marketplace:    marketplaceUsecase,
		Reconcile:      reconcileUsecase,
		Ens:            ensService,
		AuthMiddleware: authMiddleware,
		CacheTtl:       viper.GetDuration("httpCache.ttl"),
	})
	history_delivery.New(e, history)
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
