package config

import (
	"time"

	"github.com/spf13/viper"
)

type Pinata struct {
	// Pinning API base url
	ApiUrl string

	// Public gateway used to fetch pinned content
	GatewayUrl string

	// JWT used to authenticate pinning requests
	Jwt string

	// Http request timeout
	RequestTimeout time.Duration

	// Max time upload is retried. 0 means no limit
	MaxElapsedTime time.Duration

	// Max time between upload retries
	MaxInterval time.Duration
}

func setPinataDefaults() {
	viper.SetDefault("Pinata.ApiUrl", "https://api.pinata.cloud")
	viper.SetDefault("Pinata.GatewayUrl", "https://gateway.pinata.cloud/ipfs")
	viper.SetDefault("Pinata.Jwt", "")
	viper.SetDefault("Pinata.RequestTimeout", "30s")
	viper.SetDefault("Pinata.MaxElapsedTime", "2m")
	viper.SetDefault("Pinata.MaxInterval", "15s")
}
