// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/service"
)

// DefaultSyncInterval is used when the configured interval is not positive.
const DefaultSyncInterval = 5 * time.Minute

type syncWorker struct {
	syncer   Syncer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that runs syncer.Sync once on start and then
// every interval. A failed pass is logged and the next tick tries again. The
// worker is idle until Start is called.
func NewSyncWorker(syncer Syncer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &syncWorker{syncer: syncer, interval: interval, logger: logger}
}

// Start implements [Worker]. A running job is stopped first.
func (w *syncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.runPass(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.runPass(jobCtx)
			}
		}
	}()

	w.logger.Info().
		Str("func", "syncWorker.Start").
		Dur("interval", w.interval).
		Msg("sync worker started")
}

// Stop implements [Worker].
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *syncWorker) runPass(ctx context.Context) {
	started := time.Now()
	result, err := w.syncer.Sync(ctx)

	switch {
	case err == nil:
		w.logger.Debug().
			Str("func", "syncWorker.runPass").
			Dur("duration", time.Since(started)).
			Int("created", result.Created).
			Int("modified", result.Modified).
			Int("removed", result.Removed).
			Int("pending", result.Pending).
			Msg("sync pass finished")
	case errors.Is(err, service.ErrCancelled) || ctx.Err() != nil:
		w.logger.Debug().Str("func", "syncWorker.runPass").Msg("sync pass cancelled")
	case service.IsRetryable(err):
		w.logger.Warn().Err(err).
			Str("func", "syncWorker.runPass").
			Msg("sync pass failed, retrying on next tick")
	default:
		w.logger.Err(err).
			Str("func", "syncWorker.runPass").
			Msg("sync pass failed")
	}
}
