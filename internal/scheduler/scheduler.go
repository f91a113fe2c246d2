// Package scheduler drives the periodic reconciliation loop. It runs cycles
// sequentially and picks the next delay from what the last cycle observed, so
// polling tightens around live matches and backs off between matchdays.
package scheduler

import (
	"context"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

type Config struct {
	LiveInterval   time.Duration
	IdleInterval   time.Duration
	PreKickoffLead time.Duration
}

func (c Config) normalized() Config {
	if c.LiveInterval <= 0 {
		c.LiveInterval = time.Minute
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = 6 * time.Hour
	}
	if c.PreKickoffLead <= 0 {
		c.PreKickoffLead = 10 * time.Minute
	}
	return c
}

type Runner struct {
	sync      *usecase.SyncService
	matchRepo match.Repository
	cfg       Config
	logger    *logging.Logger
	now       func() time.Time
}

func NewRunner(sync *usecase.SyncService, matchRepo match.Repository, cfg Config, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}

	return &Runner{
		sync:      sync,
		matchRepo: matchRepo,
		cfg:       cfg.normalized(),
		logger:    logger,
		now:       time.Now,
	}
}

// Run loops until the context is cancelled. A failed cycle is logged and
// retried on the live interval; the loop itself never dies.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "scheduler started",
		"live_interval", r.cfg.LiveInterval.String(),
		"idle_interval", r.cfg.IdleInterval.String(),
		"pre_kickoff_lead", r.cfg.PreKickoffLead.String(),
	)

	for {
		summary, err := r.sync.RunCycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.ErrorContext(ctx, "sync cycle failed", "error", err)
		}

		delay := r.nextDelay(ctx, summary, err != nil)
		r.logger.DebugContext(ctx, "next sync cycle scheduled", "delay", delay.String())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// nextDelay picks the polling cadence: live interval while matches are in
// play or after a failed cycle, time-to-kickoff minus the lead when a match
// is coming up, idle interval otherwise.
func (r *Runner) nextDelay(ctx context.Context, summary usecase.SyncSummary, cycleFailed bool) time.Duration {
	minDelay := time.Minute
	if cycleFailed || summary.LiveMatches > 0 {
		return maxDuration(r.cfg.LiveInterval, minDelay)
	}

	now := r.now().UTC()
	nearest, err := r.matchRepo.NextKickoff(ctx, now)
	if err != nil {
		r.logger.WarnContext(ctx, "next kickoff lookup failed", "error", err)
		return maxDuration(r.cfg.LiveInterval, minDelay)
	}

	if nearest != nil {
		delay := nearest.Add(-r.cfg.PreKickoffLead).Sub(now)
		if delay <= 0 {
			return maxDuration(r.cfg.LiveInterval, minDelay)
		}
		if delay > r.cfg.IdleInterval {
			return r.cfg.IdleInterval
		}
		return maxDuration(delay, minDelay)
	}

	return maxDuration(r.cfg.IdleInterval, minDelay)
}

func maxDuration(left, right time.Duration) time.Duration {
	if left > right {
		return left
	}
	return right
}
