package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	"github.com/x-xyz/listingsync/base/database/redisclient"
	"github.com/x-xyz/listingsync/base/ethereum"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/marketplace"
	"github.com/x-xyz/listingsync/service/chain"
	"github.com/x-xyz/listingsync/service/chain/contract"
	"github.com/x-xyz/listingsync/service/query"
	"github.com/x-xyz/listingsync/service/redis"
	history_repository "github.com/x-xyz/listingsync/stores/history/repository"
	history_usecase "github.com/x-xyz/listingsync/stores/history/usecase"
	listing_repository "github.com/x-xyz/listingsync/stores/listing/repository"
	listing_usecase "github.com/x-xyz/listingsync/stores/listing/usecase"
	marketplace_usecase "github.com/x-xyz/listingsync/stores/marketplace/usecase"
)

const usage = `usage: marketctl [flags] <command> [args]

commands:
  approve              approve the marketplace for an asset contract
  list                 approve if needed, list a token and index the listing
  buy <recordId>       buy one item of an indexed listing
  cancel <recordId>    cancel an indexed listing off chain
  check <listingId>    print the on-chain view of a listing

the signer key is read from PRIVATE_KEY
`

type app struct {
	chain       chain.Client
	marketplace marketplace.Marketplace
	erc1155     marketplace.Erc1155
	usecase     marketplace.UseCase
}

func main() {
	configFile := pflag.StringP("config", "c", "infra/configs/config.yaml", "config file")
	asset := pflag.String("asset", "", "asset contract, defaults to contracts.editionDrop")
	tokenId := pflag.String("token", "0", "token id")
	quantity := pflag.Int64("qty", 1, "quantity to list")
	price := pflag.String("price", "", "price per item in ETH")
	collection := pflag.String("collection", "", "collection name stored with the listing")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		fail(err)
	}
	log.SetLevel(viper.GetString("log_level"))

	ctx := bCtx.Background()
	a, err := newApp(ctx, args[0] != "check")
	if err != nil {
		fail(err)
	}
	if *asset == "" {
		*asset = viper.GetString("contracts.editionDrop")
	}

	switch args[0] {
	case "approve":
		err = a.approve(ctx, domain.Address(*asset))
	case "list":
		err = a.list(ctx, marketplace.CreateListingParams{
			AssetContract:  domain.Address(*asset),
			TokenId:        domain.TokenId(*tokenId),
			Quantity:       *quantity,
			Price:          *price,
			CollectionName: *collection,
		})
	case "buy":
		err = withArg(args, func(id string) error { return a.buy(ctx, id) })
	case "cancel":
		err = withArg(args, func(id string) error { return a.cancel(ctx, id) })
	case "check":
		err = withArg(args, func(id string) error { return a.check(ctx, id) })
	default:
		pflag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func withArg(args []string, f func(string) error) error {
	if len(args) != 2 {
		return fmt.Errorf("%s takes exactly one argument", args[0])
	}
	return f(args[1])
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// newApp connects the chain and, when withStore is set, the listing store
func newApp(ctx bCtx.Ctx, withStore bool) (*app, error) {
	chainService, err := chain.NewClient(ctx, chain.ClientCfg{
		ChainId:            domain.ChainId(viper.GetInt32("chain.id")),
		RpcUrl:             viper.GetString("chain.rpcUrl"),
		MaxConcurrentCalls: viper.GetInt("chain.maxConcurrentCalls"),
		ReceiptPoll:        viper.GetDuration("chain.receiptPoll"),
		ReceiptTimeout:     viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		return nil, err
	}
	a := &app{
		chain:       chainService,
		marketplace: contract.NewMarketplace(chainService, domain.Address(viper.GetString("contracts.marketplace"))),
		erc1155:     contract.NewErc1155(chainService),
	}
	if !withStore {
		return a, nil
	}

	redisName := viper.GetString("redis.name")
	redisService := redis.New(redisName, metrics.New(redisName), &redis.Pools{
		Src: redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
			DB: viper.GetInt("redis.db"),
		}),
	})

	var listingRepo listing.Repo
	switch viper.GetString("store.backend") {
	case "mongo":
		mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:        viper.GetString("mongo.uri"),
			AuthDBName: viper.GetString("mongo.authDBName"),
			DBName:     viper.GetString("mongo.dbName"),
			SSL:        viper.GetBool("mongo.enableSSL"),
			SetSafe:    true,
		})
		if listingRepo, err = listing_repository.NewMongoRepo(ctx, query.New(mongoClient, false)); err != nil {
			return nil, err
		}
	case "redis":
		listingRepo = listing_repository.NewRedisRepo(redisService)
	default:
		return nil, fmt.Errorf("store backend %q is not shared, use mongo or redis", viper.GetString("store.backend"))
	}

	history := history_usecase.New(history_repository.NewRedisRepo(redisService))
	a.usecase = marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		Marketplace: a.marketplace,
		Erc1155:     a.erc1155,
		Listing: listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
			Repo:      listingRepo,
			Observers: []listing.StatusObserver{history_usecase.NewRecorder(history)},
		}),
		History: history,
	})
	return a, nil
}

func (a *app) signer() (*bind.TransactOpts, error) {
	hexKey := os.Getenv("PRIVATE_KEY")
	if hexKey == "" {
		return nil, fmt.Errorf("PRIVATE_KEY is not set")
	}
	key, _, err := ethereum.LoadKey(hexKey)
	if err != nil {
		return nil, err
	}
	return bind.NewKeyedTransactorWithChainID(key, big.NewInt(int64(a.chain.ChainId())))
}

func (a *app) approve(ctx bCtx.Ctx, asset domain.Address) error {
	signer, err := a.signer()
	if err != nil {
		return err
	}
	owner := domain.Address(signer.From.Hex())
	approved, err := a.erc1155.IsApprovedForAll(ctx, asset, owner, a.marketplace.Address())
	if err != nil {
		return err
	}
	if approved {
		fmt.Println("already approved")
		return nil
	}
	receipt, err := a.erc1155.SetApprovalForAll(ctx, signer, asset, a.marketplace.Address(), true)
	if err != nil {
		return err
	}
	fmt.Printf("approved in %s\n", receipt.TxHash)
	return nil
}

func (a *app) list(ctx bCtx.Ctx, p marketplace.CreateListingParams) error {
	signer, err := a.signer()
	if err != nil {
		return err
	}
	progress, err := a.usecase.CreateListing(ctx, signer, p)
	if progress != nil {
		printJSON(progress)
	}
	return err
}

func (a *app) buy(ctx bCtx.Ctx, recordId string) error {
	signer, err := a.signer()
	if err != nil {
		return err
	}
	res, err := a.usecase.Purchase(ctx, signer, recordId)
	if err != nil {
		return err
	}
	printJSON(res)
	return nil
}

func (a *app) cancel(ctx bCtx.Ctx, recordId string) error {
	signer, err := a.signer()
	if err != nil {
		return err
	}
	if err := a.usecase.Cancel(ctx, domain.Address(signer.From.Hex()), recordId); err != nil {
		return err
	}
	fmt.Printf("cancelled %s\n", recordId)
	return nil
}

func (a *app) check(ctx bCtx.Ctx, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return fmt.Errorf("invalid listing id %q", arg)
	}
	l, err := a.marketplace.GetListing(ctx, big.NewInt(id))
	if err != nil {
		return err
	}
	fmt.Printf("listing %s\n", l.ListingId)
	fmt.Printf("  seller:    %s\n", l.Seller)
	fmt.Printf("  contract:  %s\n", l.NftContract)
	fmt.Printf("  token id:  %s\n", l.TokenId)
	fmt.Printf("  quantity:  %s\n", l.Quantity)
	fmt.Printf("  price:     %s ETH\n", listing.FromWei(l.PricePerItem).String())
	fmt.Printf("  active:    %t\n", l.Active)
	return nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
