// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"encoding/binary"
)

const (
	// HandleSize is the number of bytes a Handle occupies on the wire and in
	// the local cache.
	HandleSize = 8

	// NodeHandleSize is the number of significant bytes of a NodeHandle.
	NodeHandleSize = 6
)

// Handle identifies an account, a Set or a SetElement.
type Handle uint64

// UndefHandle is the "no value" sentinel for Handle.
const UndefHandle Handle = ^Handle(0)

// IsUndef reports whether h is UndefHandle.
func (h Handle) IsUndef() bool {
	return h == UndefHandle
}

// Base64 returns the compact textual form of h: its 8 little-endian bytes in
// URL-safe Base64 without padding.
func (h Handle) Base64() string {
	var b [HandleSize]byte
	binary.LittleEndian.PutUint64(b[:], uint64(h))
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	if h.IsUndef() {
		return "UNDEF"
	}
	return h.Base64()
}

// HandleFromBase64 decodes the textual form produced by [Handle.Base64].
// Empty or undecodable input yields UndefHandle.
func HandleFromBase64(s string) Handle {
	if s == "" {
		return UndefHandle
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil || len(b) == 0 || len(b) > HandleSize {
		return UndefHandle
	}
	var full [HandleSize]byte
	copy(full[:], b)
	return Handle(binary.LittleEndian.Uint64(full[:]))
}

// NodeHandle identifies a node of the remote file tree. Only the low
// NodeHandleSize bytes are significant.
type NodeHandle uint64

// UndefNodeHandle is the "no node" sentinel.
const UndefNodeHandle NodeHandle = 0xFFFFFFFFFFFF

// IsUndef reports whether h is UndefNodeHandle.
func (h NodeHandle) IsUndef() bool {
	return h&UndefNodeHandle == UndefNodeHandle
}

// Base64 returns the 6 significant bytes of h in URL-safe Base64.
func (h NodeHandle) Base64() string {
	var b [HandleSize]byte
	binary.LittleEndian.PutUint64(b[:], uint64(h))
	return base64.RawURLEncoding.EncodeToString(b[:NodeHandleSize])
}

// String implements fmt.Stringer.
func (h NodeHandle) String() string {
	if h.IsUndef() {
		return "UNDEF"
	}
	return h.Base64()
}
