// Package store is a namespaced, typed key/value store that persists every
// value as armored Z85 text through a pluggable byte Provider.
//
// Components:
//   - Provider: byte store with TTL (Ristretto, BigCache, Redis).
//   - Codec[V]: (de)serializes V <-> []byte before armoring.
//   - Logger / Hooks: optional observability.
//
// Keys:
//
//	z85:<ns>:<key>  ->  armor(codec(value))
//
// Entries that fail to unarmor or decode are deleted on read and reported as
// misses, so a foreign or truncated write never surfaces as a value.
package store
