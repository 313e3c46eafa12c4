package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/unkn0wn-root/z85/armor"
	c "github.com/unkn0wn-root/z85/codec"
	pr "github.com/unkn0wn-root/z85/provider"
)

const defaultTTL = 10 * time.Minute

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[V]
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	maxEntrySize   int
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Codec == nil {
		return nil, ErrNoCodec
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	s := &store[V]{
		ns:           opts.Namespace,
		provider:     opts.Provider,
		codec:        opts.Codec,
		enabled:      !opts.Disabled,
		maxEntrySize: opts.MaxEntrySize,
	}

	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	if key == "" {
		return zero, false, ErrEmptyKey
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		return zero, false, &KeyError{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return zero, false, nil
	}
	if s.maxEntrySize > 0 && len(raw) > s.maxEntrySize {
		s.heal(ctx, k, "too_large", fmt.Errorf("%w: %d > %d", ErrEntryTooLarge, len(raw), s.maxEntrySize))
		return zero, false, nil
	}
	payload, err := armor.DecodeBytes(raw)
	if err != nil {
		s.heal(ctx, k, "armor", err)
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, "value_decode", err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return &KeyError{Op: "set", Key: key, Err: err}
	}
	if s.maxEntrySize > 0 {
		if n := armor.EncodedLen(len(payload)); n > s.maxEntrySize {
			return &KeyError{Op: "set", Key: key, Err: fmt.Errorf("%w: %d > %d", ErrEntryTooLarge, n, s.maxEntrySize)}
		}
	}
	k := s.storageKey(key)
	raw := armor.AppendEncode(nil, payload)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		return &KeyError{Op: "set", Key: key, Err: err}
	}
	if !ok {
		s.hooks.SetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", Fields{"key": key})
	}
	return nil
}

func (s *store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.provider.Del(ctx, s.storageKey(key)); err != nil {
		return &KeyError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *store[V]) GetMany(ctx context.Context, keys []string) (map[string]V, []string, error) {
	out := make(map[string]V, len(keys))
	var missing []string
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if !s.enabled {
			missing = append(missing, k)
			continue
		}
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			out[k] = v
		} else {
			missing = append(missing, k)
		}
	}
	return out, missing, nil
}

func (s *store[V]) SetMany(ctx context.Context, items map[string]V, ttl time.Duration) error {
	if !s.enabled || len(items) == 0 {
		return nil
	}
	// deterministic order so a failure always stops at the same key
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := s.Set(ctx, k, items[k], ttl); err != nil {
			return err
		}
	}
	return nil
}

// heal drops an entry that could not be decoded.
func (s *store[V]) heal(ctx context.Context, storageKey, reason string, cause error) {
	s.hooks.InvalidEntry(storageKey, reason)
	s.log.Debug("dropping invalid entry", Fields{"key": storageKey, "reason": reason, "err": cause})
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.hooks.HealFailed(storageKey, err)
		s.log.Warn("delete of invalid entry failed", Fields{"key": storageKey, "err": err})
	}
}

func (s *store[V]) storageKey(userKey string) string {
	return "z85:" + s.ns + ":" + userKey
}
