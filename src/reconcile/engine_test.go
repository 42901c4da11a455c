package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	monitor_portal "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring/portal"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

type fakeLedger struct {
	// Stale statuses returned by the per-user index, in order
	summaries []registry.Application
	indexErr  error

	// Authoritative state by id
	applications map[string]*registry.Application
	fetchErr     map[string]error

	// Submission transactions by document hash
	transactions map[string]string
}

func (self *fakeLedger) GetUserApplications(ctx context.Context, ownerIdentity string) ([]registry.Application, error) {
	if self.indexErr != nil {
		return nil, self.indexErr
	}
	return self.summaries, nil
}

func (self *fakeLedger) GetApplication(ctx context.Context, id string) (*registry.Application, error) {
	if err, failed := self.fetchErr[id]; failed {
		return nil, err
	}
	application, found := self.applications[id]
	if !found {
		return nil, registry.ErrNotFound
	}
	return application, nil
}

func (self *fakeLedger) FindSubmissionTx(ctx context.Context, documentHash string, window uint64) (string, error) {
	txID, found := self.transactions[documentHash]
	if !found {
		return "", registry.ErrTxNotFound
	}
	return txID, nil
}

type EngineTestSuite struct {
	suite.Suite
	config *config.Config
}

func (s *EngineTestSuite) SetupSuite() {
	s.config = config.Default()
}

func (s *EngineTestSuite) newEngine(ledger *fakeLedger) *Engine {
	return NewEngine(&s.config.Reconciler).
		WithLedger(ledger).
		WithMonitor(monitor_portal.NewMonitor())
}

func (s *EngineTestSuite) application(id string, status uint8, hash string) registry.Application {
	return registry.Application{
		ID:            id,
		OwnerIdentity: "user-7",
		OwnerWallet:   common.HexToAddress("0x02"),
		DocumentHash:  hash,
		Status:        status,
		SubmittedAt:   1700000000,
		IsActive:      true,
	}
}

// newLedger builds a registry whose index reports every application as
// pending while the authoritative reads carry the given statuses
func (s *EngineTestSuite) newLedger(statuses ...uint8) *fakeLedger {
	ledger := &fakeLedger{
		applications: make(map[string]*registry.Application),
		fetchErr:     make(map[string]error),
		transactions: make(map[string]string),
	}

	for i, status := range statuses {
		id := DeriveApplicationID(i)
		hash := fmt.Sprintf("Qm%d", i+1)

		stale := s.application("", uint8(vocab.StatusPending), hash)
		ledger.summaries = append(ledger.summaries, stale)

		current := s.application(id, status, hash)
		ledger.applications[id] = &current
	}

	return ledger
}

func (s *EngineTestSuite) TestDeriveApplicationID() {
	assert.Equal(s.T(), "APP_1", DeriveApplicationID(0))
	assert.Equal(s.T(), "APP_7", DeriveApplicationID(6))
}

func (s *EngineTestSuite) TestAuthoritativeStatusWinsOverIndex() {
	ledger := s.newLedger(uint8(vocab.StatusApproved), uint8(vocab.StatusRejected))

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Owner)
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 2)

	// The index said pending for both
	assert.Equal(s.T(), "active", out[0].DisplayStatus)
	assert.Equal(s.T(), "rejected", out[1].DisplayStatus)
	assert.False(s.T(), out[0].Stale)
	assert.False(s.T(), out[1].Stale)
}

func (s *EngineTestSuite) TestOrderAndLengthArePreserved() {
	ledger := s.newLedger(
		uint8(vocab.StatusApproved),
		uint8(vocab.StatusPending),
		uint8(vocab.StatusUnderReview),
	)

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Admin)
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 3)

	assert.Equal(s.T(), "APP_1", out[0].ID)
	assert.Equal(s.T(), "APP_2", out[1].ID)
	assert.Equal(s.T(), "APP_3", out[2].ID)
}

func (s *EngineTestSuite) TestEntryFetchFailureDegradesToStale() {
	ledger := s.newLedger(
		uint8(vocab.StatusApproved),
		uint8(vocab.StatusApproved),
		uint8(vocab.StatusApproved),
	)
	ledger.fetchErr["APP_2"] = errors.New("rpc timeout")

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Owner)
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 3)

	// The failed entry serves the index data under its derived id
	assert.True(s.T(), out[1].Stale)
	assert.Equal(s.T(), "APP_2", out[1].ID)
	assert.Equal(s.T(), "pending", out[1].DisplayStatus)

	// Neighbours are untouched
	assert.False(s.T(), out[0].Stale)
	assert.Equal(s.T(), "active", out[0].DisplayStatus)
	assert.False(s.T(), out[2].Stale)
}

func (s *EngineTestSuite) TestIndexFailureIsTyped() {
	ledger := &fakeLedger{indexErr: errors.New("connection refused")}

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Owner)
	assert.ErrorIs(s.T(), err, ErrIndexUnavailable)
	assert.Empty(s.T(), out)
}

func (s *EngineTestSuite) TestEmptyIndexIsNotAnError() {
	ledger := &fakeLedger{}

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-0", vocab.Owner)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), out)
}

func (s *EngineTestSuite) TestTransactionIdRecovery() {
	ledger := s.newLedger(uint8(vocab.StatusApproved), uint8(vocab.StatusApproved))
	ledger.transactions["Qm1"] = "0xabc"
	// No event for Qm2 within the window

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Owner)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "0xabc", out[0].TransactionID)
	assert.Empty(s.T(), out[1].TransactionID)
}

func (s *EngineTestSuite) TestUnknownStatusDegradesToDefaultLabel() {
	ledger := s.newLedger(uint8(7))

	out, err := s.newEngine(ledger).Reconcile(context.Background(), "user-7", vocab.Admin)
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 1)
	assert.Equal(s.T(), vocab.DefaultLabel, out[0].DisplayStatus)
}

func (s *EngineTestSuite) TestReconcileIsIdempotent() {
	ledger := s.newLedger(uint8(vocab.StatusApproved), uint8(vocab.StatusRejected))
	engine := s.newEngine(ledger)

	first, err := engine.Reconcile(context.Background(), "user-7", vocab.Owner)
	require.NoError(s.T(), err)

	second, err := engine.Reconcile(context.Background(), "user-7", vocab.Owner)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), first, second)
}
