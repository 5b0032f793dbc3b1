package cmd

import (
	"codevault/internal/chain"
	"codevault/internal/config"
	"codevault/internal/core"
	"codevault/internal/db"
	"codevault/internal/http/handler"
	"codevault/internal/http/handler/middleware"
	"codevault/internal/http/payload"
	"codevault/internal/http/server"
	"codevault/internal/repository"
	"codevault/pkg/jwt"
	"codevault/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("codevault", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	var store *db.Store
	switch config.DBDriver {
	case "sqlite":
		store, err = db.NewSQLiteStore(config.DBConnectionURL)
	default:
		store, err = db.NewPostgresStore(config.DBConnectionURL)
	}
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	// repository
	repo := repository.NewVaultRepository(store)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// optional on-chain receipt verification for confirm operations
	var verifier core.ChainVerifier
	if config.ChainRPCURL != "" {
		client, err := ethclient.Dial(config.ChainRPCURL)
		if err != nil {
			logger.Errorw("chain rpc connection failed", "error", err)
			return err
		}
		verifier = chain.NewVerifier(client)
	}

	// vault
	vault := core.NewVault(logger, repo, verifier)

	// optional identity-token check on user sync
	var identity handler.TokenVerifier
	if config.SyncTokenSecret != "" {
		identity = jwt.NewVerifier([]byte(config.SyncTokenSecret))
	}

	// handler
	vaultHlr := handler.NewVaultHandler(
		logger,
		payload.DecodeValidator{},
		vault,
		identity)

	// register routes
	mux := http.NewServeMux()
	vaultHlr.Register(mux)

	// middleware
	var hdlr http.Handler = mux
	if config.PayToAddress != "" && config.FacilitatorURL != "" {
		paywall := middleware.NewPaywallMiddleware(
			logger,
			config.PayToAddress,
			paywallRoutes(),
			middleware.NewFacilitatorClient(config.FacilitatorURL))
		hdlr = paywall.Gate(hdlr)
	}
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// paywallRoutes is the gated-route table for the x402 paywall.
func paywallRoutes() map[string]middleware.Requirement {
	return map[string]middleware.Requirement{
		"POST /api/transactions": {
			Network:           "movement",
			Asset:             "0x1::aptos_coin::AptosCoin",
			MaxAmountRequired: "100000000",
			Description:       "Unlock transaction features",
			MimeType:          "application/json",
			MaxTimeoutSeconds: 600,
		},
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
