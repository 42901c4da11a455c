package config

import (
	"time"

	"github.com/spf13/viper"
)

type Submitter struct {
	// Mandatory dwell time in the preview state before submit is enabled
	PreviewCooldown time.Duration

	// Skip the preview dwell on the non-interactive REST path, where there
	// is no form for an owner to re-read
	ServerCooldownExempt bool

	// Name prefix of pinned application documents
	DocumentNamePrefix string
}

func setSubmitterDefaults() {
	viper.SetDefault("Submitter.PreviewCooldown", "60s")
	viper.SetDefault("Submitter.ServerCooldownExempt", true)
	viper.SetDefault("Submitter.DocumentNamePrefix", "theater-application")
}
