// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordKind tells which entity a cached record holds.
type RecordKind int

const (
	// SetRecord is a serialized Set.
	SetRecord RecordKind = 1

	// ElementRecord is a serialized SetElement.
	ElementRecord RecordKind = 2
)

// String implements fmt.Stringer.
func (k RecordKind) String() string {
	switch k {
	case SetRecord:
		return "set"
	case ElementRecord:
		return "element"
	default:
		return "unknown"
	}
}

// CacheRecord is one row of the local entity cache used for fast restart.
// Data is the serialized entity sealed with the cache key and is opaque to
// the database.
type CacheRecord struct {
	Kind RecordKind

	// ID is the entity id. For elements Parent holds the owning set id; for
	// sets Parent is UndefHandle.
	ID     Handle
	Parent Handle

	Data []byte
}
