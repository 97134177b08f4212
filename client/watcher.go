// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/bitpeople-node/models"
)

// Fetcher is satisfied by *Client.
type Fetcher interface {
	Fetch(ctx context.Context, address string) (*models.AccountResponse, error)
}

// Watcher refreshes one address. At most one fetch runs at a time; a
// trigger that arrives while one is running is dropped, not queued.
type Watcher struct {
	fetcher  Fetcher
	address  string
	inFlight atomic.Bool

	OnUpdate func(*models.AccountResponse)
	OnError  func(error)
}

func NewWatcher(fetcher Fetcher, address string) *Watcher {
	return &Watcher{fetcher: fetcher, address: address}
}

// Trigger fetches the snapshot and hands it to OnUpdate, or the error to
// OnError. It returns false without fetching if a fetch is in progress.
func (w *Watcher) Trigger(ctx context.Context) bool {
	if !w.inFlight.CompareAndSwap(false, true) {
		slog.Debug("fetch already in progress, dropping trigger", "address", w.address)
		return false
	}
	defer w.inFlight.Store(false)

	resp, err := w.fetcher.Fetch(ctx, w.address)
	if err != nil {
		slog.Warn("failed to fetch account", "address", w.address, "error", err)
		if w.OnError != nil {
			w.OnError(err)
		}
		return true
	}
	if w.OnUpdate != nil {
		w.OnUpdate(resp)
	}
	return true
}

// Run triggers immediately and then every interval until ctx is done. Ticks
// that land on a running fetch are dropped. Run returns once the last
// started fetch has finished, so no callback fires after it.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) {
	var wg sync.WaitGroup
	defer wg.Wait()

	trigger := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Trigger(ctx)
		}()
	}
	trigger()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			trigger()
		}
	}
}
