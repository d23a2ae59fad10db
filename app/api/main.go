package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/database/mongoclient"
	"github.com/remixer-xyz/goapi/base/log"
	bValidator "github.com/remixer-xyz/goapi/base/validator"
	"github.com/remixer-xyz/goapi/domain"
	mmiddleware "github.com/remixer-xyz/goapi/middleware"
	"github.com/remixer-xyz/goapi/service/chain"
	"github.com/remixer-xyz/goapi/service/chain/contract"
	"github.com/remixer-xyz/goapi/service/pinata"
	"github.com/remixer-xyz/goapi/service/query"
	"github.com/remixer-xyz/goapi/service/zora"
	auth_delivery "github.com/remixer-xyz/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/remixer-xyz/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/remixer-xyz/goapi/stores/auth/usecase"
	coin_delivery "github.com/remixer-xyz/goapi/stores/coin/delivery/http"
	coin_usecase "github.com/remixer-xyz/goapi/stores/coin/usecase"
	compare_delivery "github.com/remixer-xyz/goapi/stores/compare/delivery/http"
	compare_usecase "github.com/remixer-xyz/goapi/stores/compare/usecase"
	explore_delivery "github.com/remixer-xyz/goapi/stores/explore/delivery/http"
	explore_usecase "github.com/remixer-xyz/goapi/stores/explore/usecase"
	hc_delivery "github.com/remixer-xyz/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/remixer-xyz/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/remixer-xyz/goapi/stores/healthcheck/usecase"
	metadata_delivery "github.com/remixer-xyz/goapi/stores/metadata/delivery/http"
	metadata_repository "github.com/remixer-xyz/goapi/stores/metadata/repository"
	metadata_usecase "github.com/remixer-xyz/goapi/stores/metadata/usecase"
	portfolio_delivery "github.com/remixer-xyz/goapi/stores/portfolio/delivery/http"
	portfolio_usecase "github.com/remixer-xyz/goapi/stores/portfolio/usecase"
	remix_delivery "github.com/remixer-xyz/goapi/stores/remix/delivery/http"
	remix_repository "github.com/remixer-xyz/goapi/stores/remix/repository"
	remix_usecase "github.com/remixer-xyz/goapi/stores/remix/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	e.Use(mmiddleware.ResponseLogger())
	e.Use(mmiddleware.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, dbName, enableSSL)
	q := query.New(mongoClient)

	pinataService := pinata.New(&pinata.ClientCfg{
		Jwt:     viper.GetString("pinata.jwt"),
		Timeout: viper.GetDuration("pinata.timeout"),
	})

	zoraClient := zora.NewClient(&zora.ClientCfg{
		Endpoint: viper.GetString("zora.endpoint"),
		Apikey:   viper.GetString("zora.apikey"),
		Timeout:  viper.GetDuration("zora.timeout"),
	})

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	signerKeys := make(map[domain.ChainId]string)
	factories := make(map[domain.ChainId]domain.Address)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		if signerKey := networks.GetString(fmt.Sprintf("%s.signerKey", k)); signerKey != "" {
			signerKeys[chainId] = signerKey
		}
		if factory := networks.GetString(fmt.Sprintf("%s.coinFactory", k)); factory != "" {
			factories[chainId] = domain.Address(factory).ToLower()
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:    rpcs,
		SignerKeys: signerKeys,
	})
	if err != nil {
		panic(err)
	}
	remixerContract := contract.NewRemixer(factories, chainService)

	// init metadata readers
	httpReader := metadata_repository.NewHttpReaderRepo(http.Client{}, viper.GetDuration("metadata.timeout"), nil)
	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.nodeApiUrl"))
	ipfsReader := metadata_repository.NewIpfsNodeApiReaderRepo(ipfsShell, viper.GetDuration("metadata.timeout"))

	// init usecases
	remixRepo := remix_repository.New(q)
	remixUsecase := remix_usecase.New(pinataService, remixerContract, remixRepo)
	coinUsecase := coin_usecase.New(zoraClient)
	portfolioUsecase := portfolio_usecase.New(zoraClient)
	compareUsecase := compare_usecase.New(coinUsecase)
	exploreUsecase := explore_usecase.New(zoraClient)
	authUsecase := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	metadataUsecase := metadata_usecase.New(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader: httpReader,
		IpfsReader: ipfsReader,
	})
	hcUsecase := hc_usecase.New(hc_repo.New(mongoClient))

	authMiddleware := auth_middleware.New(authUsecase)

	// init deliveries
	hc_delivery.New(e, hcUsecase)
	auth_delivery.New(e, authUsecase)
	remix_delivery.New(e, authMiddleware.Auth(), remixUsecase)
	coin_delivery.New(e, coinUsecase)
	portfolio_delivery.New(e, portfolioUsecase)
	compare_delivery.New(e, compareUsecase)
	explore_delivery.New(e, exploreUsecase)
	metadata_delivery.New(e, metadataUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
