// Package sloghooks reports store events through log/slog with sampling and
// key redaction.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/z85/store"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	InvalidEvery uint64
	RejectEvery  uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	invalidCtr atomic.Uint64
	rejectCtr  atomic.Uint64
}

var _ store.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) InvalidEntry(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.InvalidEvery, &h.invalidCtr) {
		return
	}
	h.l.Debug("z85store.invalid_entry",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) HealFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("z85store.heal_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) SetRejected(storageKey string) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Warn("z85store.set_rejected",
		"key", h.redact(storageKey))
}
