package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// cacheSaltKey separates cache salts from any other HMAC use of account
// handles.
var cacheSaltKey = []byte("go-cloud-keeper/cache-salt/v1")

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances
// keyed with cacheSaltKey.
var hasherPool = sync.Pool{
	New: func() any {
		return hmac.New(sha256.New, cacheSaltKey)
	},
}

// Hash computes an HMAC-SHA256 digest of data using a hasher pulled from the
// pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// CacheSalt returns the salt used to derive the local cache key of account.
// Different accounts sharing one cache secret get different keys.
func CacheSalt(account models.Handle) []byte {
	var b [models.HandleSize]byte
	binary.LittleEndian.PutUint64(b[:], uint64(account))
	return Hash(b[:])
}
