package storage

import (
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
)

// ErrRetriesExhausted means a transient error persisted through all attempts
var ErrRetriesExhausted = errors.New("retries exhausted")

// error classes caused by short-lived contention on the directory
var transientErrors = []error{
	syscall.ENOTEMPTY,
	syscall.EBUSY,
	syscall.EPERM,
}

func isTransient(err error) bool {
	for _, e := range transientErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

type retryPolicy struct {
	attempts  int
	delay     time.Duration
	retryable func(error) bool
	sleep     func(time.Duration)
}

func newRetryPolicy(cfg config.Retry) retryPolicy {
	return retryPolicy{
		attempts:  cfg.Attempts,
		delay:     time.Duration(cfg.Delay) * time.Millisecond,
		retryable: isTransient,
		sleep:     time.Sleep,
	}
}

// do runs op until it succeeds, fails with a non-retryable error or attempts are over.
// The n-th retry waits delay*n.
func (p retryPolicy) do(op func() error) error {
	attempts := p.attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if !p.retryable(err) {
			return err
		}
		if attempt < attempts-1 {
			p.sleep(p.delay * time.Duration(attempt+1))
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, err)
}
