package report

import "go.uber.org/atomic"

type RegistryErrors struct {
	CallFailures         atomic.Uint64 `json:"call_failures"`
	WriteFailures        atomic.Uint64 `json:"write_failures"`
	ConfirmationTimeouts atomic.Uint64 `json:"confirmation_timeouts"`
}

type RegistryState struct {
	SubmissionsConfirmed   atomic.Int64 `json:"submissions_confirmed"`
	StatusUpdatesConfirmed atomic.Int64 `json:"status_updates_confirmed"`
}

type RegistryReport struct {
	State  RegistryState  `json:"state"`
	Errors RegistryErrors `json:"errors"`
}
