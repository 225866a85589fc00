package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// QueryLogStore is the subset of the database the pruner needs.
type QueryLogStore interface {
	PruneQueryLogs(ctx context.Context, cutoff time.Time) (int64, error)
}

// QueryLogPruner deletes FAQ query logs older than the retention period.
type QueryLogPruner struct {
	store     QueryLogStore
	interval  time.Duration
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewQueryLogPruner creates a new query log pruner.
func NewQueryLogPruner(store QueryLogStore, interval, retention time.Duration, logger *zap.Logger) *QueryLogPruner {
	return &QueryLogPruner{
		store:     store,
		interval:  interval,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Start begins the background prune loop. It blocks until ctx is done.
func (p *QueryLogPruner) Start(ctx context.Context) {
	p.logger.Info("query log pruner started",
		zap.Duration("interval", p.interval), zap.Duration("retention", p.retention))

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("query log pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *QueryLogPruner) prune(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)
	n, err := p.store.PruneQueryLogs(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("failed to prune query logs", zap.Error(err))
		}
		return
	}
	if n > 0 {
		p.logger.Info("pruned query logs", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	}
}
