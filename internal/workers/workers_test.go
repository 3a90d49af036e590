// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/mock"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_StartAndStopOrder(t *testing.T) {
	order := []string{}

	newOrderWorker := func(id string) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker("1"),
		newOrderWorker("2"),
		newOrderWorker("3"),
	}}
	ws.Run(context.Background())
	ws.Stop()

	expected := []string{"run 1", "run 2", "run 3", "stop 3", "stop 2", "stop 1"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %v", len(expected), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%q, got %q", i, v, order[i])
		}
	}
}

func TestNewWorkers_WiresProbeAndSyncJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockSyncJob(ctrl)
	probe := &mockWorker{}
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 15*time.Second),
		job.EXPECT().Stop(),
	)

	ws := NewWorkers(probe, job, config.Workers{SyncInterval: 15 * time.Second}, logger.Nop())
	ws.Run(ctx)
	ws.Stop()

	if probe.runCount != 1 || probe.stopCount != 1 {
		t.Errorf("expected probe to run and stop once, got run=%d stop=%d", probe.runCount, probe.stopCount)
	}
}

// orderWorker is a helper that records its lifecycle calls in a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, "run "+o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop "+o.id)
}
