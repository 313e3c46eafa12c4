// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{InvalidEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	s, _ := store.New[Peer](store.Options[Peer]{
//	    Namespace: "peer",
//	    Provider:  provider,
//	    Codec:     codec.JSON[Peer]{},
//	    Hooks:     hooks,
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/z85/store"
)

// Hooks forwards events to inner on a bounded worker pool.
// Events are dropped when the queue is full or after Close.
type Hooks struct {
	inner store.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ store.Hooks = (*Hooks)(nil)

func New(inner store.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Safe to call twice.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

// Dropped returns how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) InvalidEntry(k, r string)       { h.try(func() { h.inner.InvalidEntry(k, r) }) }
func (h *Hooks) HealFailed(k string, err error) { h.try(func() { h.inner.HealFailed(k, err) }) }
func (h *Hooks) SetRejected(k string)           { h.try(func() { h.inner.SetRejected(k) }) }
