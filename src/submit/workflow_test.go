package submit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/session"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

type fakeLedger struct {
	result *registry.SubmitResult
	err    error

	calls      int
	lastHash   string
	lastOwner  string
	lastWallet common.Address
}

func (self *fakeLedger) SubmitApplication(ctx context.Context, ownerIdentity string, ownerWallet common.Address, documentHash string) (*registry.SubmitResult, error) {
	self.calls++
	self.lastOwner = ownerIdentity
	self.lastWallet = ownerWallet
	self.lastHash = documentHash
	return self.result, self.err
}

type fakeBlobStore struct {
	hash string
	err  error

	calls    int
	lastData []byte
}

func (self *fakeBlobStore) PinBytes(ctx context.Context, name string, data []byte) (string, error) {
	self.calls++
	self.lastData = data
	return self.hash, self.err
}

type WorkflowTestSuite struct {
	suite.Suite
	config *config.Config

	now time.Time
}

func (s *WorkflowTestSuite) SetupSuite() {
	s.config = config.Default()
}

func (s *WorkflowTestSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *WorkflowTestSuite) newWorkflow() *Workflow {
	return NewWorkflow(&s.config.Submitter, "user-7", common.HexToAddress("0x02")).
		WithClock(func() time.Time { return s.now })
}

func (s *WorkflowTestSuite) ownerDetails() OwnerDetails {
	return OwnerDetails{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		IdentityProof: "QmIdentityProof",
	}
}

func (s *WorkflowTestSuite) theaterDetails() TheaterDetails {
	return TheaterDetails{
		Name:           "Galaxy Cinemas",
		AddressLine:    "12 MG Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		PostalCode:     "560001",
		Screens:        4,
		SeatsPerScreen: 180,
	}
}

func (s *WorkflowTestSuite) legalDocuments() LegalDocuments {
	return LegalDocuments{
		OwnershipDeed:      "QmDeed",
		TradeLicenseNumber: "TL-2024-0042",
		GstNumber:          "29ABCDE1234F1Z5",
	}
}

// fillForm walks the workflow into preview
func (s *WorkflowTestSuite) fillForm(workflow *Workflow) {
	require.NoError(s.T(), workflow.SetOwnerDetails(s.ownerDetails()))
	require.NoError(s.T(), workflow.SetTheaterDetails(s.theaterDetails()))
	require.NoError(s.T(), workflow.SetLegalDocuments(s.legalDocuments()))
}

func (s *WorkflowTestSuite) TestStepOrderIsEnforced() {
	workflow := s.newWorkflow()

	err := workflow.SetTheaterDetails(s.theaterDetails())
	assert.ErrorIs(s.T(), err, ErrStepIncomplete)

	err = workflow.SetLegalDocuments(s.legalDocuments())
	assert.ErrorIs(s.T(), err, ErrStepIncomplete)

	assert.NoError(s.T(), workflow.SetOwnerDetails(s.ownerDetails()))
	assert.Equal(s.T(), StateTheaterDetails, workflow.State())
}

func (s *WorkflowTestSuite) TestStepValidation() {
	workflow := s.newWorkflow()

	owner := s.ownerDetails()
	owner.Email = "not-an-email"
	err := workflow.SetOwnerDetails(owner)

	var validationErr *ValidationError
	assert.ErrorAs(s.T(), err, &validationErr)
	assert.Equal(s.T(), StateOwnerDetails, workflow.State())
}

func (s *WorkflowTestSuite) TestBackToEditRetainsForm() {
	workflow := s.newWorkflow()
	s.fillForm(workflow)
	assert.Equal(s.T(), StatePreview, workflow.State())

	require.NoError(s.T(), workflow.BackToEdit(StateTheaterDetails))
	assert.Equal(s.T(), StateTheaterDetails, workflow.State())

	// Other steps keep their data
	assert.Equal(s.T(), s.ownerDetails(), workflow.Form().Owner)
	assert.Equal(s.T(), s.legalDocuments(), workflow.Form().Legal)

	// Preview is reachable directly since every step is still complete
	require.NoError(s.T(), workflow.EnterPreview())
	assert.Equal(s.T(), StatePreview, workflow.State())
}

func (s *WorkflowTestSuite) TestCooldownIsEnforced() {
	workflow := s.newWorkflow().
		WithLedger(&fakeLedger{result: &registry.SubmitResult{ApplicationID: "APP_7", TxID: "0xabc"}}).
		WithBlobStore(&fakeBlobStore{hash: "Qm123"})
	s.fillForm(workflow)

	assert.False(s.T(), workflow.CanSubmit())
	assert.Equal(s.T(), s.config.Submitter.PreviewCooldown, workflow.RemainingCooldown())

	_, err := workflow.Submit(context.Background())
	assert.ErrorIs(s.T(), err, ErrCooldownActive)

	// Halfway through nothing changes
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown / 2)
	assert.False(s.T(), workflow.CanSubmit())

	s.now = s.now.Add(s.config.Submitter.PreviewCooldown / 2)
	assert.True(s.T(), workflow.CanSubmit())
	assert.Equal(s.T(), time.Duration(0), workflow.RemainingCooldown())
}

func (s *WorkflowTestSuite) TestCooldownRestartsOnReentry() {
	workflow := s.newWorkflow()
	s.fillForm(workflow)

	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)
	assert.True(s.T(), workflow.CanSubmit())

	require.NoError(s.T(), workflow.BackToEdit(StateOwnerDetails))
	require.NoError(s.T(), workflow.EnterPreview())

	// Full cooldown again
	assert.False(s.T(), workflow.CanSubmit())
	assert.Equal(s.T(), s.config.Submitter.PreviewCooldown, workflow.RemainingCooldown())
}

func (s *WorkflowTestSuite) TestSubmitHappyPath() {
	ledger := &fakeLedger{result: &registry.SubmitResult{ApplicationID: "APP_7", TxID: "0xabc"}}
	blob := &fakeBlobStore{hash: "Qm123"}

	workflow := s.newWorkflow().
		WithLedger(ledger).
		WithBlobStore(blob)
	s.fillForm(workflow)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	result, err := workflow.Submit(context.Background())
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "APP_7", result.ApplicationID)
	assert.Equal(s.T(), "0xabc", result.TransactionID)
	assert.Equal(s.T(), "Qm123", result.DocumentHash)
	assert.Equal(s.T(), StateSucceeded, workflow.State())

	// The ledger write carried the pinned hash
	assert.Equal(s.T(), "Qm123", ledger.lastHash)
	assert.Equal(s.T(), "user-7", ledger.lastOwner)
	assert.NotEmpty(s.T(), blob.lastData)
}

func (s *WorkflowTestSuite) TestNoLedgerWriteBeforeUpload() {
	ledger := &fakeLedger{result: &registry.SubmitResult{}}
	blob := &fakeBlobStore{err: errors.New("pinata is down")}

	workflow := s.newWorkflow().
		WithLedger(ledger).
		WithBlobStore(blob)
	s.fillForm(workflow)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	_, err := workflow.Submit(context.Background())
	assert.ErrorIs(s.T(), err, ErrUpload)
	assert.Equal(s.T(), StateFailed, workflow.State())
	assert.Zero(s.T(), ledger.calls)
}

func (s *WorkflowTestSuite) TestRetryReusesArtifactAndHash() {
	ledger := &fakeLedger{err: errors.New("rpc timeout")}
	blob := &fakeBlobStore{hash: "Qm123"}

	workflow := s.newWorkflow().
		WithLedger(ledger).
		WithBlobStore(blob)
	s.fillForm(workflow)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	_, err := workflow.Submit(context.Background())
	assert.ErrorIs(s.T(), err, ErrLedgerWrite)
	assert.Equal(s.T(), StateFailed, workflow.State())
	assert.Equal(s.T(), 1, blob.calls)

	// Retry goes straight to the ledger, no regeneration or re-upload
	ledger.err = nil
	ledger.result = &registry.SubmitResult{ApplicationID: "APP_7", TxID: "0xdef"}

	result, err := workflow.Submit(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Qm123", result.DocumentHash)
	assert.Equal(s.T(), 1, blob.calls)
	assert.Equal(s.T(), 2, ledger.calls)
}

func (s *WorkflowTestSuite) TestGuardRejectsConcurrentSubmission() {
	guard := session.NewGuard(&s.config.Session)

	// Another session for the same owner is mid-submission
	require.True(s.T(), guard.TryBeginProcessing("user-7"))

	ledger := &fakeLedger{result: &registry.SubmitResult{}}
	workflow := s.newWorkflow().
		WithLedger(ledger).
		WithBlobStore(&fakeBlobStore{hash: "Qm456"}).
		WithGuard(guard)
	s.fillForm(workflow)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	_, err := workflow.Submit(context.Background())
	assert.ErrorIs(s.T(), err, ErrAlreadyInFlight)
	assert.Equal(s.T(), 0, ledger.calls)
}

func (s *WorkflowTestSuite) TestSecondApplicationAfterSuccess() {
	guard := session.NewGuard(&s.config.Session)

	first := s.newWorkflow().
		WithLedger(&fakeLedger{result: &registry.SubmitResult{ApplicationID: "APP_7", TxID: "0xabc"}}).
		WithBlobStore(&fakeBlobStore{hash: "Qm123"}).
		WithGuard(guard)
	s.fillForm(first)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	_, err := first.Submit(context.Background())
	require.NoError(s.T(), err)

	// The owner applies again later for another theater
	s.now = s.now.Add(3 * time.Hour)
	ledger := &fakeLedger{result: &registry.SubmitResult{ApplicationID: "APP_8", TxID: "0xdef"}}
	second := s.newWorkflow().
		WithLedger(ledger).
		WithBlobStore(&fakeBlobStore{hash: "Qm456"}).
		WithGuard(guard)
	s.fillForm(second)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	result, err := second.Submit(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "APP_8", result.ApplicationID)
	assert.Equal(s.T(), 1, ledger.calls)
}

func (s *WorkflowTestSuite) TestNoEditingAfterSuccess() {
	workflow := s.newWorkflow().
		WithLedger(&fakeLedger{result: &registry.SubmitResult{ApplicationID: "APP_7", TxID: "0xabc"}}).
		WithBlobStore(&fakeBlobStore{hash: "Qm123"})
	s.fillForm(workflow)
	s.now = s.now.Add(s.config.Submitter.PreviewCooldown)

	_, err := workflow.Submit(context.Background())
	require.NoError(s.T(), err)

	assert.Error(s.T(), workflow.SetOwnerDetails(s.ownerDetails()))
	assert.Error(s.T(), workflow.EnterPreview())
}
