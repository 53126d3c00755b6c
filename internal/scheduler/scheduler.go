package scheduler

import (
	"context"
	"time"

	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type seatReconciler interface {
	Reconcile(ctx context.Context) (domain.ReconcileReport, error)
}

// Scheduler periodically runs the seat drift correction so counters
// converge even when nobody hits the manual reconcile endpoint.
type Scheduler struct {
	walkService seatReconciler
	interval    time.Duration
	logger      logger.Logger
}

func New(
	walkService seatReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		walkService: walkService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.walkService.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile seats",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.WalksRepaired > 0 {
		s.logger.Info("seat reconciliation adjusted walks",
			logger.Int("walks_repaired", report.WalksRepaired),
			logger.Int("seats_adjusted", report.SeatsAdjusted),
		)
	}
}
