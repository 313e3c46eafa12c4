// Package provider defines the byte store used by store.
//
// Values handed to a Provider by store are armored Z85 text, so any backend
// that can hold printable ASCII works, including ones that mangle binary.
// Implementations MUST still be byte-for-byte transparent: Get returns
// exactly the bytes previously passed to Set for a key.
//
// The keyspace "z85:<ns>:" is owned by store. Foreign values written under
// it fail to unarmor and are deleted on read.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
