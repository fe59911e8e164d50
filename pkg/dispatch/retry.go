package dispatch

import (
	"context"
	"time"

	"github.com/kasuboski/dvrdispatch/config"
)

const (
	DefaultSeasonAttempts      = 5
	DefaultSeasonDelay         = 500 * time.Millisecond
	DefaultLegacyAttempts      = 10
	DefaultLegacyDelay         = time.Second
	DefaultEpisodePollInterval = 500 * time.Millisecond
	DefaultEpisodePollTimeout  = 2 * time.Minute
)

// RetryPolicy bounds the waits spent on a DVR that is still scraping metadata
type RetryPolicy struct {
	SeasonAttempts      int
	SeasonDelay         time.Duration
	LegacyAttempts      int
	LegacyDelay         time.Duration
	EpisodePollInterval time.Duration
	EpisodePollTimeout  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		SeasonAttempts:      DefaultSeasonAttempts,
		SeasonDelay:         DefaultSeasonDelay,
		LegacyAttempts:      DefaultLegacyAttempts,
		LegacyDelay:         DefaultLegacyDelay,
		EpisodePollInterval: DefaultEpisodePollInterval,
		EpisodePollTimeout:  DefaultEpisodePollTimeout,
	}
}

// NewRetryPolicy builds a policy from config. Unset values keep their defaults.
func NewRetryPolicy(cfg config.Dispatch) RetryPolicy {
	p := DefaultRetryPolicy()
	if cfg.SeasonAttempts > 0 {
		p.SeasonAttempts = cfg.SeasonAttempts
	}
	if cfg.SeasonDelay > 0 {
		p.SeasonDelay = cfg.SeasonDelay
	}
	if cfg.LegacyAttempts > 0 {
		p.LegacyAttempts = cfg.LegacyAttempts
	}
	if cfg.LegacyDelay > 0 {
		p.LegacyDelay = cfg.LegacyDelay
	}
	if cfg.EpisodePollInterval > 0 {
		p.EpisodePollInterval = cfg.EpisodePollInterval
	}
	if cfg.EpisodePollTimeout > 0 {
		p.EpisodePollTimeout = cfg.EpisodePollTimeout
	}
	return p
}

// findFunc checks for a value once. found is false while the DVR has not caught up yet.
type findFunc[T any] func(ctx context.Context) (value T, found bool, err error)

// find calls fn up to attempts times, waiting delay between calls.
// The last value is returned when nothing is found.
func find[T any](ctx context.Context, attempts int, delay time.Duration, fn findFunc[T]) (T, bool, error) {
	var value T
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, delay); err != nil {
				return value, false, err
			}
		}

		var found bool
		var err error
		value, found, err = fn(ctx)
		if err != nil || found {
			return value, found, err
		}
	}

	return value, false, nil
}

// poll calls fn every interval until it finds a value. It gives up with notReady once timeout passes.
func poll[T any](ctx context.Context, interval, timeout time.Duration, notReady error, fn findFunc[T]) (T, error) {
	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	timedOut := func(err error) error {
		if ctx.Err() == nil && pollCtx.Err() != nil {
			return notReady
		}
		return err
	}

	for {
		value, found, err := fn(pollCtx)
		if err != nil {
			return value, timedOut(err)
		}
		if found {
			return value, nil
		}

		if err := sleep(pollCtx, interval); err != nil {
			return value, timedOut(err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
