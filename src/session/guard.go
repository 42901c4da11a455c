// Package session guards ledger-mutating actions so that rapid re-invocation
// for the same identity cannot produce duplicate writes.
package session

import (
	"sync"
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"

	"github.com/sirupsen/logrus"
)

// Guard enforces at most one in-flight side-effecting action per identity,
// plus an opt-in processed set for actions that must run once per identity.
// In-progress entries self-clear after the configured timeout so a stuck
// caller cannot wedge an identity forever.
type Guard struct {
	log    *logrus.Entry
	config *config.Session

	mtx        sync.Mutex
	inProgress map[string]time.Time
	processed  map[string]struct{}

	now func() time.Time
}

func NewGuard(cfg *config.Session) (self *Guard) {
	self = new(Guard)
	self.log = logger.NewSublogger("session-guard")
	self.config = cfg
	self.inProgress = make(map[string]time.Time)
	self.processed = make(map[string]struct{})
	self.now = time.Now
	return
}

// WithClock overrides the time source, used in tests
func (self *Guard) WithClock(now func() time.Time) *Guard {
	self.now = now
	return self
}

// TryBeginProcessing returns true when the caller may proceed. False means
// the identity is already processed or another action is in flight.
func (self *Guard) TryBeginProcessing(identity string) bool {
	self.mtx.Lock()
	defer self.mtx.Unlock()

	if _, done := self.processed[identity]; done {
		return false
	}

	if startedAt, busy := self.inProgress[identity]; busy {
		if self.now().Sub(startedAt) < self.config.ProcessingTimeout {
			return false
		}
		// Stuck entry, reclaim it
		self.log.WithField("identity", identity).Warn("Reclaiming stuck in-progress entry")
	}

	self.inProgress[identity] = self.now()
	return true
}

// EndProcessing releases the in-flight slot without recording completion.
// The identity may begin a new action right away, only concurrent ones are
// refused.
func (self *Guard) EndProcessing(identity string) {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	delete(self.inProgress, identity)
}

// MarkProcessed records a completed action and releases the in-flight slot.
// Further attempts for the identity are refused until ClearProcessed. Meant
// for once-per-identity actions, not for repeatable ones.
func (self *Guard) MarkProcessed(identity string) {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	delete(self.inProgress, identity)
	self.processed[identity] = struct{}{}
}

// ClearProcessed releases both the in-flight slot and the processed mark,
// allowing the action to run again
func (self *Guard) ClearProcessed(identity string) {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	delete(self.inProgress, identity)
	delete(self.processed, identity)
}
