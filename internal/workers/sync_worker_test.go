// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-carddav-sync/internal/logger"
	"github.com/MKhiriev/go-carddav-sync/internal/service"
	"github.com/MKhiriev/go-carddav-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncer counts Sync calls and returns err from each of them.
type spySyncer struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncer) Sync(context.Context) (models.SyncResult, error) {
	s.calls.Add(1)
	return models.SyncResult{}, s.err
}

func TestNewSyncWorker_DefaultInterval(t *testing.T) {
	w := NewSyncWorker(&spySyncer{}, 0, logger.Nop()).(*syncWorker)
	assert.Equal(t, DefaultSyncInterval, w.interval)

	w = NewSyncWorker(&spySyncer{}, -time.Second, logger.Nop()).(*syncWorker)
	assert.Equal(t, DefaultSyncInterval, w.interval)
}

func TestSyncWorker_FirstPassRunsImmediately(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, time.Hour, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	w.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncWorker_RunsOnTicker(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should run several times, ran: %d", got)
}

func TestSyncWorker_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no passes after Stop")
}

func TestSyncWorker_Stop_BeforeStart_NoPanic(t *testing.T) {
	w := NewSyncWorker(&spySyncer{}, time.Minute, logger.Nop())

	assert.NotPanics(t, func() { w.Stop() })
	assert.NotPanics(t, func() { w.Stop() })
}

func TestSyncWorker_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, time.Hour, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// a restart runs a new first pass
	w.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	w.Stop()

	assert.Equal(t, int64(2), spy.calls.Load())
}

func TestSyncWorker_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncer{}
	w := NewSyncWorker(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	w.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after the context was cancelled")
	}
}

func TestSyncWorker_FailedPassesDoNotStopJob(t *testing.T) {
	errs := []error{
		fmt.Errorf("%w: dial tcp", service.ErrConnection),
		service.ErrAuthenticationFailed,
		service.ErrCancelled,
	}

	for _, syncErr := range errs {
		t.Run(syncErr.Error(), func(t *testing.T) {
			spy := &spySyncer{err: syncErr}
			w := NewSyncWorker(spy, 10*time.Millisecond, logger.Nop())

			w.Start(context.Background())
			time.Sleep(55 * time.Millisecond)
			w.Stop()

			got := spy.calls.Load()
			assert.GreaterOrEqual(t, got, int64(3), "Sync keeps running despite errors: %d", got)
		})
	}
}
