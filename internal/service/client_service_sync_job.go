package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
)

type clientSyncJob struct {
	engine  SyncEngine
	monitor ConnectivityMonitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that drains the queue on a ticker.
// The job is idle until Start is called.
func NewClientSyncJob(engine SyncEngine, monitor ConnectivityMonitor, logger *logger.Logger) SyncJob {
	return &clientSyncJob{engine: engine, monitor: monitor, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that drains the queue every interval while
// the remote is connected and something is queued. If interval is zero or
// negative it defaults to config.DefaultSyncInterval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	if !j.monitor.IsConnected() || len(j.engine.Pending()) == 0 {
		return
	}

	_, err := j.engine.Drain(ctx)
	if err == nil || errors.Is(err, ErrDrainInProgress) || errors.Is(err, ErrNotConnected) || ctx.Err() != nil {
		return
	}
	j.logger.Err(err).Str("func", "clientSyncJob.tick").Msg("periodic drain failed")
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
