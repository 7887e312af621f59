package service

import (
	"context"
	"time"

	"github.com/techsolutions/horabank/internal/logger"
)

// RefreshJob periodically re-fetches the domain collections so long-idle
// sessions don't render hours-old data. It is a background worker: Run
// blocks until the context is cancelled.
//
// Ticks are skipped while the session has no token; an unauthenticated
// refresh would only produce 401 noise.
type RefreshJob struct {
	session  *SessionStore
	domain   *DomainStore
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshJob builds a refresh worker with the given tick interval.
func NewRefreshJob(session *SessionStore, domain *DomainStore, interval time.Duration, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		session:  session,
		domain:   domain,
		interval: interval,
		logger:   log,
	}
}

// Run ticks until ctx is cancelled. Fetch errors are already notified
// and logged by the domain store, so the job only records the tick.
func (j *RefreshJob) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug().Msg("refresh job stopped")
			return
		case <-ticker.C:
			j.tick(ctx)
		}
	}
}

func (j *RefreshJob) tick(ctx context.Context) {
	if j.session.Token() == "" {
		return
	}

	j.logger.Debug().Msg("refreshing domain data")

	_ = j.domain.FetchTasks(ctx)
	_ = j.domain.FetchUsers(ctx)
	_ = j.domain.FetchHourBank(ctx)
}
