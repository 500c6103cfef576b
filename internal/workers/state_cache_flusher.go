// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

const defaultFlushInterval = 30 * time.Second

// StateCacheFlusher periodically flushes the state cache of the local syncs.
// A last flush runs when it is stopped so that no queued change is lost.
type StateCacheFlusher struct {
	flusher  Flusher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStateCacheFlusher returns an idle flusher. A non-positive interval
// defaults to 30 seconds.
func NewStateCacheFlusher(flusher Flusher, interval time.Duration, logger *logger.Logger) *StateCacheFlusher {
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	return &StateCacheFlusher{
		flusher:  flusher,
		interval: interval,
		logger:   logger,
	}
}

// Run stops any previous run, then flushes every interval until ctx is
// cancelled or Stop is called.
func (w *StateCacheFlusher) Run(ctx context.Context) {
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

		for {
			select {
			case <-jobCtx.Done():
				w.flush(context.WithoutCancel(jobCtx))
				return
			case <-t.C:
				w.flush(jobCtx)
			}
		}
	}()
}

// Stop cancels the running job and blocks until its final flush is done.
// Safe to call when the job is not running.
func (w *StateCacheFlusher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *StateCacheFlusher) flush(ctx context.Context) {
	if err := w.flusher.Flush(ctx); err != nil {
		w.logger.Err(err).
			Str("func", "StateCacheFlusher.flush").
			Msg("failed to flush state cache")
	}
}
