// Periodically re-runs a refresh callback so cached admin views converge on
// registry state without an explicit invalidation path.
package refresh

import (
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/task"
)

type Refresher struct {
	*task.Task

	onRefresh func() error

	// Manual trigger, coalesced while a refresh is pending
	poke chan struct{}
}

func NewRefresher(cfg *config.Config) (self *Refresher) {
	self = new(Refresher)

	self.poke = make(chan struct{}, 1)

	self.Task = task.NewTask(cfg, "refresher").
		WithPeriodicSubtaskFunc(cfg.Gateway.AdminRefreshInterval, self.refresh).
		WithSubtaskFunc(self.runPoked)

	return
}

func (self *Refresher) WithOnRefresh(v func() error) *Refresher {
	self.onRefresh = v
	return self
}

// Poke requests an immediate refresh. Non-blocking; a trigger that arrives
// while one is already queued is dropped.
func (self *Refresher) Poke() {
	select {
	case self.poke <- struct{}{}:
	default:
	}
}

func (self *Refresher) runPoked() error {
	for {
		select {
		case <-self.Ctx.Done():
			return nil
		case <-self.poke:
		}

		self.refresh()
	}
}

func (self *Refresher) refresh() (err error) {
	if self.onRefresh == nil {
		return nil
	}

	err = self.onRefresh()
	if err != nil {
		self.Log.WithError(err).Error("Failed to refresh cached registry state")
	}

	// Periodic subtasks treat errors as fatal for the task, refresh failures
	// are transient so they are swallowed here
	return nil
}
