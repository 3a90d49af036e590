package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/service"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers bundles the agent's background work: the device reachability
// probe and the periodic sync job.
func NewWorkers(probe Worker, job service.SyncJob, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{probe, NewSyncJobWorker(job, cfg.SyncInterval)},
		logger:  logger,
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
	if w.logger != nil {
		w.logger.Info().Str("func", "Workers.Run").Int("count", len(w.workers)).Msg("workers started")
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	if w.logger != nil {
		w.logger.Info().Str("func", "Workers.Stop").Msg("workers stopped")
	}
}

type syncJobWorker struct {
	job      service.SyncJob
	interval time.Duration
}

// NewSyncJobWorker adapts a sync job to the Worker lifecycle.
func NewSyncJobWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (s *syncJobWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *syncJobWorker) Stop() {
	s.job.Stop()
}
