// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncEngine counts Drain calls and reports a fixed queue length.
type spySyncEngine struct {
	calls   atomic.Int64
	pending atomic.Int64
	err     error
}

func (s *spySyncEngine) Enqueue(models.MutationKind, string, string, models.Payload) (models.QueuedMutation, error) {
	return models.QueuedMutation{}, nil
}

func (s *spySyncEngine) Drain(context.Context) (models.SyncSummary, error) {
	s.calls.Add(1)
	return models.SyncSummary{}, s.err
}

func (s *spySyncEngine) Pending() []models.QueuedMutation {
	return make([]models.QueuedMutation, s.pending.Load())
}

func newSpySyncEngine(pending int64) *spySyncEngine {
	spy := &spySyncEngine{}
	spy.pending.Store(pending)
	return spy
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(newSpySyncEngine(0), newStubMonitor(true), logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_DrainsWhenConnectedAndQueued(t *testing.T) {
	spy := newSpySyncEngine(2)
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())

	// 10ms interval, so roughly 5 ticks fit in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Drain should run several times, ran %d", got)
}

func TestClientSyncJob_SkipsWhenDisconnected(t *testing.T) {
	spy := newSpySyncEngine(2)
	job := NewClientSyncJob(spy, newStubMonitor(false), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestClientSyncJob_SkipsWhenQueueEmpty(t *testing.T) {
	spy := newSpySyncEngine(0)
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestClientSyncJob_DrainErrorsKeepTicking(t *testing.T) {
	spy := newSpySyncEngine(1)
	spy.err = errRemote
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := newSpySyncEngine(1)
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no drains after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(newSpySyncEngine(0), newStubMonitor(true), logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_Restart(t *testing.T) {
	spy := newSpySyncEngine(1)
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())
	ctx := context.Background()

	job.Start(ctx, time.Hour)
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestClientSyncJob_ContextCancelStops(t *testing.T) {
	spy := newSpySyncEngine(1)
	job := NewClientSyncJob(spy, newStubMonitor(true), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}
