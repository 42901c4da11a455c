// Package submit drives the theater application form through its steps, the
// mandatory preview cooldown and the ordered pipeline of document generation,
// blob upload and registry write.
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/session"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

type State int

const (
	StateOwnerDetails State = iota
	StateTheaterDetails
	StateLegalDocuments
	StatePreview
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateOwnerDetails:
		return "owner_details"
	case StateTheaterDetails:
		return "theater_details"
	case StateLegalDocuments:
		return "legal_documents"
	case StatePreview:
		return "preview"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return ""
}

// Ledger is the write surface the workflow needs from the registry client
type Ledger interface {
	SubmitApplication(ctx context.Context, ownerIdentity string, ownerWallet common.Address, documentHash string) (*registry.SubmitResult, error)
}

// BlobStore is the upload surface the workflow needs from the pinning client
type BlobStore interface {
	PinBytes(ctx context.Context, name string, data []byte) (contentHash string, err error)
}

// Result is returned on a confirmed submission
type Result struct {
	ApplicationID string
	TransactionID string
	DocumentHash  string
}

// Workflow is a single owner's application session. Not safe for concurrent
// use; the session guard serializes ledger writes across re-invocations.
type Workflow struct {
	log    *logrus.Entry
	config *config.Submitter

	ownerIdentity string
	ownerWallet   common.Address

	ledger   Ledger
	blob     BlobStore
	guard    *session.Guard
	generate DocumentGenerator
	now      func() time.Time

	state     State
	form      Form
	completed [3]bool

	previewEnteredAt time.Time

	// Retained between attempts so a ledger failure does not force
	// regeneration or re-upload
	artifact     []byte
	documentHash string

	result *Result
}

func NewWorkflow(cfg *config.Submitter, ownerIdentity string, ownerWallet common.Address) (self *Workflow) {
	self = new(Workflow)
	self.log = logger.NewSublogger("submit").WithField("owner", ownerIdentity)
	self.config = cfg
	self.ownerIdentity = ownerIdentity
	self.ownerWallet = ownerWallet
	self.generate = GenerateJSONDocument
	self.now = time.Now
	self.state = StateOwnerDetails
	return
}

func (self *Workflow) WithLedger(v Ledger) *Workflow {
	self.ledger = v
	return self
}

func (self *Workflow) WithBlobStore(v BlobStore) *Workflow {
	self.blob = v
	return self
}

func (self *Workflow) WithGuard(v *session.Guard) *Workflow {
	self.guard = v
	return self
}

func (self *Workflow) WithClock(now func() time.Time) *Workflow {
	self.now = now
	return self
}

func (self *Workflow) WithDocumentGenerator(v DocumentGenerator) *Workflow {
	self.generate = v
	return self
}

func (self *Workflow) State() State {
	return self.state
}

func (self *Workflow) Form() Form {
	return self.form
}

func (self *Workflow) Result() *Result {
	return self.result
}

// SetOwnerDetails validates and stores step one. Allowed in any editing
// state; previously entered data for other steps is retained.
func (self *Workflow) SetOwnerDetails(v OwnerDetails) (err error) {
	if err = self.ensureEditable(); err != nil {
		return
	}
	if err = validateStep(&v); err != nil {
		return
	}

	self.form.Owner = v
	self.completed[0] = true
	if self.state == StateOwnerDetails {
		self.state = StateTheaterDetails
	}
	return
}

func (self *Workflow) SetTheaterDetails(v TheaterDetails) (err error) {
	if err = self.ensureEditable(); err != nil {
		return
	}
	if !self.completed[0] {
		return ErrStepIncomplete
	}
	if err = validateStep(&v); err != nil {
		return
	}

	self.form.Theater = v
	self.completed[1] = true
	if self.state == StateTheaterDetails {
		self.state = StateLegalDocuments
	}
	return
}

func (self *Workflow) SetLegalDocuments(v LegalDocuments) (err error) {
	if err = self.ensureEditable(); err != nil {
		return
	}
	if !self.completed[0] || !self.completed[1] {
		return ErrStepIncomplete
	}
	if err = validateStep(&v); err != nil {
		return
	}

	self.form.Legal = v
	self.completed[2] = true
	if self.state == StateLegalDocuments {
		self.state = StatePreview
		self.previewEnteredAt = self.now()
	}
	return
}

// BackToEdit returns from preview to the given step. The cooldown restarts
// from zero on the next EnterPreview.
func (self *Workflow) BackToEdit(step State) (err error) {
	if self.state != StatePreview && self.state != StateFailed {
		return fmt.Errorf("submit: cannot edit in state %s", self.state)
	}
	if step != StateOwnerDetails && step != StateTheaterDetails && step != StateLegalDocuments {
		return fmt.Errorf("submit: %s is not an editable step", step)
	}

	self.state = step
	self.previewEnteredAt = time.Time{}
	return
}

// EnterPreview is valid once all three steps are complete. Every entry
// resets the cooldown to its full duration.
func (self *Workflow) EnterPreview() (err error) {
	if err = self.ensureEditable(); err != nil {
		return
	}
	if !self.completed[0] || !self.completed[1] || !self.completed[2] {
		return ErrStepIncomplete
	}

	self.state = StatePreview
	self.previewEnteredAt = self.now()
	return
}

// RemainingCooldown reports how long until submit becomes enabled
func (self *Workflow) RemainingCooldown() time.Duration {
	if self.state != StatePreview || self.previewEnteredAt.IsZero() {
		return self.config.PreviewCooldown
	}

	remaining := self.config.PreviewCooldown - self.now().Sub(self.previewEnteredAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (self *Workflow) CanSubmit() bool {
	if self.state == StateFailed {
		// Retry path, the cooldown was already served
		return true
	}
	return self.state == StatePreview && !self.previewEnteredAt.IsZero() && self.RemainingCooldown() == 0
}

// Submit runs the ordered pipeline: generate, pin, register. No ledger write
// is ever attempted before the upload returned a content hash. A failed
// attempt keeps the artifact and hash so a retry skips the finished phases.
func (self *Workflow) Submit(ctx context.Context) (result *Result, err error) {
	if self.state != StatePreview && self.state != StateFailed {
		return nil, ErrNotInPreview
	}
	if !self.CanSubmit() {
		return nil, ErrCooldownActive
	}

	if self.guard != nil && !self.guard.TryBeginProcessing(self.ownerIdentity) {
		return nil, ErrAlreadyInFlight
	}

	self.state = StateSubmitting
	result, err = self.submit(ctx)
	if err != nil {
		self.state = StateFailed
		if self.guard != nil {
			self.guard.EndProcessing(self.ownerIdentity)
		}
		return nil, err
	}

	self.state = StateSucceeded
	self.result = result
	if self.guard != nil {
		// Release the slot only. An owner may apply again for another
		// theater, the guard exists to stop concurrent duplicates.
		self.guard.EndProcessing(self.ownerIdentity)
	}
	return
}

func (self *Workflow) submit(ctx context.Context) (result *Result, err error) {
	// (a) generate the immutable artifact
	if self.artifact == nil {
		self.artifact, err = self.generate(&self.form, self.now())
		if err != nil {
			self.log.WithError(err).Error("Document generation failed")
			return nil, errors.Join(ErrDocumentGeneration, err)
		}
	}

	// (b) pin it, obtaining the content hash
	if self.documentHash == "" {
		name := fmt.Sprintf("%s-%s", self.config.DocumentNamePrefix, self.ownerIdentity)
		self.documentHash, err = self.blob.PinBytes(ctx, name, self.artifact)
		if err != nil {
			self.log.WithError(err).Error("Document upload failed")
			return nil, errors.Join(ErrUpload, err)
		}
	}

	// (c) register on the ledger, waiting for confirmation
	submitted, err := self.ledger.SubmitApplication(ctx, self.ownerIdentity, self.ownerWallet, self.documentHash)
	if err != nil {
		self.log.WithError(err).Error("Registry write failed")
		return nil, errors.Join(ErrLedgerWrite, err)
	}

	self.log.
		WithField("application_id", submitted.ApplicationID).
		WithField("tx", submitted.TxID).
		Info("Application registered")

	return &Result{
		ApplicationID: submitted.ApplicationID,
		TransactionID: submitted.TxID,
		DocumentHash:  self.documentHash,
	}, nil
}

func (self *Workflow) ensureEditable() error {
	switch self.state {
	case StateSubmitting, StateSucceeded:
		return fmt.Errorf("submit: cannot edit in state %s", self.state)
	}
	return nil
}
