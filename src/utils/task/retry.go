package task

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Implement operation retrying
type Retry struct {
	ctx                context.Context
	maxElapsedTime     time.Duration
	maxInterval        time.Duration
	acceptableDuration time.Duration
	onError            func(err error, isDurationAcceptable bool) error
}

func NewRetry() *Retry {
	return new(Retry)
}

// Permanent marks an error so Retry stops immediately
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (self *Retry) WithMaxElapsedTime(maxElapsedTime time.Duration) *Retry {
	self.maxElapsedTime = maxElapsedTime
	return self
}

func (self *Retry) WithMaxInterval(maxInterval time.Duration) *Retry {
	self.maxInterval = maxInterval
	return self
}

func (self *Retry) WithContext(ctx context.Context) *Retry {
	self.ctx = ctx
	return self
}

// Attempts that take longer than this are reported as not acceptable to the
// error callback, which may decide to stop retrying
func (self *Retry) WithAcceptableDuration(v time.Duration) *Retry {
	self.acceptableDuration = v
	return self
}

func (self *Retry) WithOnError(v func(err error, isDurationAcceptable bool) error) *Retry {
	self.onError = v
	return self
}

func (self *Retry) Run(f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = self.maxElapsedTime
	b.MaxInterval = self.maxInterval

	ctx := self.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	operation := func() error {
		start := time.Now()
		err := f()
		if err == nil {
			return nil
		}

		isDurationAcceptable := self.acceptableDuration <= 0 || time.Since(start) <= self.acceptableDuration
		if self.onError != nil {
			// Callback may upgrade the error to backoff.Permanent
			err = self.onError(err, isDurationAcceptable)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}
