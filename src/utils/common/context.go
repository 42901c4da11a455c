package common

import (
	"context"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
)

type contextKey int

const (
	configKey contextKey = iota
)

// SetConfig stores the configuration in the context
func SetConfig(ctx context.Context, v *config.Config) context.Context {
	return context.WithValue(ctx, configKey, v)
}

// GetConfig retrieves the configuration from the context
func GetConfig(ctx context.Context) *config.Config {
	v, ok := ctx.Value(configKey).(*config.Config)
	if !ok {
		return nil
	}
	return v
}
