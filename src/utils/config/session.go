package config

import (
	"time"

	"github.com/spf13/viper"
)

type Session struct {
	// After this time a stuck "in progress" entry clears itself
	ProcessingTimeout time.Duration
}

func setSessionDefaults() {
	viper.SetDefault("Session.ProcessingTimeout", "2m")
}
