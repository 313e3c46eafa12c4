package store

// Hooks are callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the store calls them inline.
type Hooks interface {
	// An entry was deleted on read because it could not be decoded.
	// reason ∈ {"armor", "value_decode", "too_large"}
	InvalidEntry(storageKey, reason string)

	// Deleting an invalid entry failed; it will be retried on the next read.
	HealFailed(storageKey string, err error)

	// Provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) InvalidEntry(string, string) {}
func (NopHooks) HealFailed(string, error)    {}
func (NopHooks) SetRejected(string)          {}
