package report

import "go.uber.org/atomic"

type ReconcilerErrors struct {
	IndexFailures      atomic.Uint64 `json:"index_failures"`
	EntryFetchFailures atomic.Uint64 `json:"entry_fetch_failures"`
	UnknownStatusCodes atomic.Uint64 `json:"unknown_status_codes"`
}

type ReconcilerState struct {
	ListsReconciled        atomic.Int64 `json:"lists_reconciled"`
	EntriesDegradedToStale atomic.Int64 `json:"entries_degraded_to_stale"`
	TransactionsRecovered  atomic.Int64 `json:"transactions_recovered"`
}

type ReconcilerReport struct {
	State  ReconcilerState  `json:"state"`
	Errors ReconcilerErrors `json:"errors"`
}
