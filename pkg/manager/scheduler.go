package manager

import (
	"context"
	"errors"
	"time"

	"github.com/kasuboski/dvrdispatch/config"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"go.uber.org/zap"
)

// Scheduler periodically retries open fault queue entries
type Scheduler struct {
	manager *Manager
	config  config.Manager
}

func NewScheduler(manager *Manager, config config.Manager) *Scheduler {
	return &Scheduler{
		manager: manager,
		config:  config,
	}
}

// Run blocks until ctx is done. A zero fault retry period disables the job.
func (s *Scheduler) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx, "job", "fault_retry")
	ctx = logger.WithCtx(ctx, log)

	period := s.config.Jobs.FaultRetry
	if period <= 0 {
		log.Info("fault retry job disabled")
		return nil
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("scheduler context cancelled")
			return nil
		case <-ticker.C:
			s.retry(ctx)
		}
	}
}

func (s *Scheduler) retry(ctx context.Context) {
	log := logger.FromCtx(ctx)

	_, err := s.manager.RetryFaults(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrRetryInProgress):
		log.Debug("previous fault retry still running")
	case errors.Is(err, context.Canceled):
	default:
		log.Errorw("failed to retry faults", zap.Error(err))
	}
}
