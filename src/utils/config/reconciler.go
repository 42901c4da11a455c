package config

import (
	"github.com/spf13/viper"
)

type Reconciler struct {
	// How many recent blocks are scanned when recovering transaction ids
	TxScanWindow uint64

	// Whether transaction id recovery is attempted at all
	RecoverTransactionIds bool
}

func setReconcilerDefaults() {
	viper.SetDefault("Reconciler.TxScanWindow", "5000")
	viper.SetDefault("Reconciler.RecoverTransactionIds", "true")
}
