// Package reconcile combines the registry's stale per-user index with
// authoritative per-id reads to produce the current state of an owner's
// applications.
//
// The per-user index lookup of the TheaterRegistry contract does not reflect
// later status updates; only getApplication does. The engine therefore
// re-fetches every entry by its derived id and only falls back to the stale
// summary when that re-fetch fails.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/sirupsen/logrus"
)

// The whole per-user index lookup failed; distinguishable from an owner with
// zero applications, which is an empty result and a nil error.
var ErrIndexUnavailable = errors.New("reconcile: per-user index unavailable")

// Ledger is the read surface the engine needs from the registry client
type Ledger interface {
	GetApplication(ctx context.Context, id string) (*registry.Application, error)
	GetUserApplications(ctx context.Context, ownerIdentity string) ([]registry.Application, error)
	FindSubmissionTx(ctx context.Context, documentHash string, window uint64) (txID string, err error)
}

// Application is a reconciled entry: registry state plus the portal-facing
// label and the recovered ledger write id, when one was found.
type Application struct {
	registry.Application

	// Status mapped through the portal's vocabulary
	DisplayStatus string `json:"display_status"`

	// Identifier of the ledger write that created the record, empty when no
	// creation event matched within the scanned window
	TransactionID string `json:"transaction_id,omitempty"`

	// True when the authoritative re-fetch failed and this entry carries the
	// possibly stale index data
	Stale bool `json:"stale,omitempty"`
}

// Engine is read-only and idempotent, safe to call on any schedule
type Engine struct {
	log    *logrus.Entry
	config *config.Reconciler

	ledger  Ledger
	monitor monitoring.Monitor
}

func NewEngine(cfg *config.Reconciler) (self *Engine) {
	self = new(Engine)
	self.log = logger.NewSublogger("reconcile")
	self.config = cfg
	return
}

func (self *Engine) WithLedger(v Ledger) *Engine {
	self.ledger = v
	return self
}

func (self *Engine) WithMonitor(v monitoring.Monitor) *Engine {
	self.monitor = v
	return self
}

// DeriveApplicationID reproduces the registry's sequence-based id assignment
// for the entry at the given zero-based index position.
//
// This couples to the registry assigning "APP_1", "APP_2", ... with no gaps.
// The index lookup response does not carry the id, so there is no better
// source. Do not rely on this scheme anywhere else.
func DeriveApplicationID(index int) string {
	return fmt.Sprintf("APP_%d", index+1)
}

// Reconcile returns the owner's applications with current status, in index
// order. The result always has exactly as many entries as the index returned;
// entries whose authoritative re-fetch failed degrade to the stale summary
// instead of being dropped.
func (self *Engine) Reconcile(ctx context.Context, ownerIdentity string, vocabulary vocab.Vocabulary) (out []Application, err error) {
	summaries, err := self.ledger.GetUserApplications(ctx, ownerIdentity)
	if err != nil {
		self.log.WithError(err).WithField("owner", ownerIdentity).Error("Per-user index lookup failed")
		self.monitor.GetReport().Reconciler.Errors.IndexFailures.Inc()
		return []Application{}, errors.Join(ErrIndexUnavailable, err)
	}

	if len(summaries) == 0 {
		// An owner without applications, not an error
		return []Application{}, nil
	}

	out = make([]Application, len(summaries))
	for i := range summaries {
		out[i] = self.resolve(ctx, i, &summaries[i], vocabulary)
	}

	self.monitor.GetReport().Reconciler.State.ListsReconciled.Inc()
	return out, nil
}

// resolve produces the reconciled entry for one index position
func (self *Engine) resolve(ctx context.Context, index int, summary *registry.Application, vocabulary vocab.Vocabulary) (out Application) {
	id := DeriveApplicationID(index)

	current, err := self.ledger.GetApplication(ctx, id)
	if err != nil {
		// Degrade to the stale summary, never drop the entry
		self.log.WithError(err).WithField("application_id", id).Warn("Authoritative fetch failed, serving stale index data")
		self.monitor.GetReport().Reconciler.Errors.EntryFetchFailures.Inc()
		self.monitor.GetReport().Reconciler.State.EntriesDegradedToStale.Inc()

		out.Application = *summary
		out.Application.ID = id
		out.Stale = true
	} else {
		out.Application = *current
	}

	out.DisplayStatus = self.mapStatus(id, out.Application.Status, vocabulary)
	out.TransactionID = self.recoverTransactionID(ctx, out.Application.DocumentHash)
	return
}

func (self *Engine) mapStatus(id string, code uint8, vocabulary vocab.Vocabulary) string {
	label, known := vocab.Map(int64(code), vocabulary)
	if !known {
		self.log.
			WithField("application_id", id).
			WithField("status_code", code).
			Warn("Unknown status code, degrading to default label")
		self.monitor.GetReport().Reconciler.Errors.UnknownStatusCodes.Inc()
	}
	return label
}

// recoverTransactionID scans recent creation events for the document hash.
// A miss leaves the transaction id absent, it is never an error.
func (self *Engine) recoverTransactionID(ctx context.Context, documentHash string) string {
	if !self.config.RecoverTransactionIds || documentHash == "" {
		return ""
	}

	txID, err := self.ledger.FindSubmissionTx(ctx, documentHash, self.config.TxScanWindow)
	if err != nil {
		if !errors.Is(err, registry.ErrTxNotFound) {
			self.log.WithError(err).WithField("document_hash", documentHash).Warn("Transaction id recovery failed")
		}
		return ""
	}

	self.monitor.GetReport().Reconciler.State.TransactionsRecovered.Inc()
	return txID
}
