package config

import (
	"time"

	"github.com/spf13/viper"
)

type Registry struct {
	// JSON-RPC endpoint of the chain node
	RpcUrl string

	// TheaterRegistry contract address
	ContractAddress string

	// Chain id used for transaction signing
	ChainId int64

	// Hex-encoded private key of the account sending transactions
	PrivateKey string

	// Upper bound for the gas limit of a single write
	GasLimitCap uint64

	// Max time to wait for a sent transaction to be mined
	ConfirmationTimeout time.Duration

	// How often the receipt is polled while waiting for confirmation
	ConfirmationPollInterval time.Duration

	// Max time for a single read call. 0 means no limit
	CallMaxElapsedTime time.Duration

	// Max time between read call retries
	CallMaxInterval time.Duration
}

func setRegistryDefaults() {
	viper.SetDefault("Registry.RpcUrl", "http://127.0.0.1:8545")
	viper.SetDefault("Registry.ContractAddress", "0x0000000000000000000000000000000000000000")
	viper.SetDefault("Registry.ChainId", "1337")
	viper.SetDefault("Registry.PrivateKey", "")
	viper.SetDefault("Registry.GasLimitCap", "3000000")
	viper.SetDefault("Registry.ConfirmationTimeout", "60s")
	viper.SetDefault("Registry.ConfirmationPollInterval", "1s")
	viper.SetDefault("Registry.CallMaxElapsedTime", "30s")
	viper.SetDefault("Registry.CallMaxInterval", "5s")
}
