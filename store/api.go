package store

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/z85/codec"
	pr "github.com/unkn0wn-root/z85/provider"
)

// SetCostFunc weighs an entry for cost-aware providers (Ristretto).
// raw is the armored text about to be stored.
type SetCostFunc func(storageKey string, raw []byte) int64

// Store is a typed key/value API over a Provider. Values are serialized with
// a Codec[V] and stored as armored Z85 text.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, key string) (v V, ok bool, err error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetMany returns found values keyed by user key and the missing keys in request order. Repeated keys are reported once.
	GetMany(ctx context.Context, keys []string) (values map[string]V, missing []string, err error)
	SetMany(ctx context.Context, items map[string]V, ttl time.Duration) error
}

// Options tune a Store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "curve-keys", "peer-cert"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         Logger        // nil => NopLogger
	Hooks          Hooks         // nil => NopHooks
	DefaultTTL     time.Duration // 0 => 10m
	MaxEntrySize   int           // armored bytes; 0 => unlimited
	ComputeSetCost SetCostFunc   // nil => 1
	Disabled       bool
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
