package session

import (
	"testing"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

type GuardTestSuite struct {
	suite.Suite
	config *config.Config
}

func (s *GuardTestSuite) SetupSuite() {
	s.config = config.Default()
}

func (s *GuardTestSuite) TestAtMostOnceInFlight() {
	guard := NewGuard(&s.config.Session)

	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
	assert.False(s.T(), guard.TryBeginProcessing("user-1"))

	// Other identities are unaffected
	assert.True(s.T(), guard.TryBeginProcessing("user-2"))
}

func (s *GuardTestSuite) TestEndProcessingAllowsNextAction() {
	guard := NewGuard(&s.config.Session)

	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
	guard.EndProcessing("user-1")

	// No processed mark, the identity may start another action
	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
}

func (s *GuardTestSuite) TestProcessedIsNotRepeated() {
	guard := NewGuard(&s.config.Session)

	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
	guard.MarkProcessed("user-1")
	assert.False(s.T(), guard.TryBeginProcessing("user-1"))
}

func (s *GuardTestSuite) TestClearProcessedAllowsRetry() {
	guard := NewGuard(&s.config.Session)

	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
	guard.ClearProcessed("user-1")
	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
}

func (s *GuardTestSuite) TestStuckEntryIsReclaimed() {
	now := time.Now()
	guard := NewGuard(&s.config.Session).
		WithClock(func() time.Time { return now })

	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
	assert.False(s.T(), guard.TryBeginProcessing("user-1"))

	// Entry older than the processing timeout clears itself
	now = now.Add(s.config.Session.ProcessingTimeout + time.Second)
	assert.True(s.T(), guard.TryBeginProcessing("user-1"))
}
