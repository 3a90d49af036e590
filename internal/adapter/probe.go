// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
)

// ReachabilityProbe is a [DeviceSignal] that polls the remote address. Any
// HTTP answer, whatever its status, counts as the device being online; only
// transport failures count as offline.
type ReachabilityProbe struct {
	*signalHub

	client   *utils.HTTPClient
	target   string
	interval time.Duration

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReachabilityProbe builds a probe against adapterCfg.HTTPAddress. The
// device is assumed online until the first check says otherwise.
func NewReachabilityProbe(adapterCfg config.Adapter, log *logger.Logger) (*ReachabilityProbe, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	timeout := adapterCfg.ProbeInterval
	if adapterCfg.RequestTimeout > 0 && adapterCfg.RequestTimeout < timeout {
		timeout = adapterCfg.RequestTimeout
	}

	return &ReachabilityProbe{
		signalHub: newSignalHub(true, log),
		client:    utils.NewHTTPClient(timeout),
		target:    baseURL + healthPath,
		interval:  adapterCfg.ProbeInterval,
	}, nil
}

// Check performs one probe, updates the state and returns it.
func (p *ReachabilityProbe) Check(ctx context.Context) bool {
	_, err := p.client.R().SetContext(ctx).Head(p.target)
	if ctx.Err() != nil {
		return p.Online()
	}
	online := err == nil

	if p.set(online) {
		p.logger.Info().
			Str("func", "ReachabilityProbe.Check").
			Bool("online", online).
			Msg("device reachability changed")
	}
	return online
}

// Run starts polling in the background until ctx is cancelled or Stop is
// called. Calling Run again restarts the loop.
func (p *ReachabilityProbe) Run(ctx context.Context) {
	interval := p.interval
	if interval <= 0 {
		interval = config.DefaultProbeInterval
	}

	p.Stop()

	p.runMu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.runMu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.Check(probeCtx)
			}
		}
	}()
}

// Stop ends the polling loop and waits for it to exit.
func (p *ReachabilityProbe) Stop() {
	p.runMu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
