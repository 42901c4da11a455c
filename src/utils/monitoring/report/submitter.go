package report

import "go.uber.org/atomic"

type SubmitterErrors struct {
	DocumentFailures atomic.Uint64 `json:"document_failures"`
	UploadFailures   atomic.Uint64 `json:"upload_failures"`
	LedgerFailures   atomic.Uint64 `json:"ledger_failures"`
}

type SubmitterState struct {
	ApplicationsSubmitted atomic.Int64 `json:"applications_submitted"`
}

type SubmitterReport struct {
	State  SubmitterState  `json:"state"`
	Errors SubmitterErrors `json:"errors"`
}
