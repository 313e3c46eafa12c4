package store

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvider    = errors.New("store: provider is required")
	ErrNoCodec       = errors.New("store: codec is required")
	ErrNoNamespace   = errors.New("store: namespace is required")
	ErrEntryTooLarge = errors.New("store: entry too large")
	ErrEmptyKey      = errors.New("store: empty key")
)

// KeyError ties a failure from the codec or provider to the user key it concerns.
type KeyError struct {
	Op  string // "get", "set", "delete"
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
