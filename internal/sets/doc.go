// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sets implements Sets (named collections such as photo albums) and
// their ordered Elements.
//
// Both entities keep their attributes in an [EncryptedAttrs] container: the
// remote authority sends and receives them as one opaque encrypted blob, while
// the client edits them as a plain tag→value map. Remote deltas are merged
// with UpdateWith, which reports exactly which fields changed, and entities
// are persisted to the local cache with Serialize and restored with
// UnserializeSet / UnserializeElement.
//
// The container distinguishes three attribute states:
//
//	nil map          not decrypted yet, or never allocated
//	empty map        decrypted, zero attributes
//	non-empty map    decrypted attributes
//
// An attribute with an empty value is a deletion marker when rebasing and is
// never "present but empty".
package sets
