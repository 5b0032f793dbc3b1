package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	dbDriverEnvKey        = "DB_DRIVER"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	chainRPCEnvKey        = "CHAIN_RPC_URL"
	syncTokenSecretEnvKey = "SYNC_TOKEN_SECRET"
	payToEnvKey           = "PAY_TO_ADDRESS"
	facilitatorEnvKey     = "FACILITATOR_URL"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	// optional: on-chain receipt verification for transaction confirms
	ChainRPCURL string
	// optional: identity-provider token check on user sync
	SyncTokenSecret string
	// optional: x402 paywall gate
	PayToAddress   string
	FacilitatorURL string
}

func NewAppConfig() (App, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	driver := os.Getenv(dbDriverEnvKey)
	if driver == "" {
		driver = "postgres"
	}
	if driver != "postgres" && driver != "sqlite" {
		return App{}, fmt.Errorf("unsupported %s value: %q", dbDriverEnvKey, driver)
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		ChainRPCURL:     os.Getenv(chainRPCEnvKey),
		SyncTokenSecret: os.Getenv(syncTokenSecretEnvKey),
		PayToAddress:    os.Getenv(payToEnvKey),
		FacilitatorURL:  os.Getenv(facilitatorEnvKey),
	}, nil
}
