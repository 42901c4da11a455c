package config

import (
	"time"

	"github.com/spf13/viper"
)

type Gateway struct {
	// REST API address of the portal gateway
	ListenAddress string

	// Max time for handling a single request
	ServerRequestTimeout time.Duration

	// How long reconciled owner lists are served from cache
	CacheTtl time.Duration

	// How often the admin application list cache is refreshed in the background
	AdminRefreshInterval time.Duration
}

func setGatewayDefaults() {
	viper.SetDefault("Gateway.ListenAddress", "0.0.0.0:4000")
	viper.SetDefault("Gateway.ServerRequestTimeout", "30s")
	viper.SetDefault("Gateway.CacheTtl", "15s")
	viper.SetDefault("Gateway.AdminRefreshInterval", "30s")
}
