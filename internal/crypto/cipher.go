// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// aesGCMCipher is the private implementation of [Cipher].
type aesGCMCipher struct {
	// Argon2id tuning parameters for DeriveCacheKey.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	rand io.Reader
}

// NewCipher constructs a [Cipher] with the Argon2id parameters recommended by
// OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCipher() Cipher {
	return &aesGCMCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		rand:         rand.Reader,
	}
}

// EncryptAttrs implements [Cipher].
func (c *aesGCMCipher) EncryptAttrs(attrs map[string]string, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}

	blob, err := c.seal(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt attributes: %w", err)
	}
	return blob, nil
}

// DecryptAttrs implements [Cipher]. A blob holding JSON null yields an empty
// map.
func (c *aesGCMCipher) DecryptAttrs(blob, key []byte) (map[string]string, error) {
	plaintext, err := c.open(blob, key)
	if err != nil {
		return nil, fmt.Errorf("decrypt attributes: %w", err)
	}

	var attrs map[string]string
	if err = json.Unmarshal(plaintext, &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal attributes: %w", err)
	}
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return attrs, nil
}

// WrapKey implements [Cipher].
func (c *aesGCMCipher) WrapKey(key, shareKey []byte) ([]byte, error) {
	wrapped, err := c.seal(key, shareKey)
	if err != nil {
		return nil, fmt.Errorf("wrap key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey implements [Cipher]. A wrong share key surfaces as an
// authentication failure.
func (c *aesGCMCipher) UnwrapKey(wrapped, shareKey []byte) ([]byte, error) {
	key, err := c.open(wrapped, shareKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	return key, nil
}

// Seal implements [Cipher].
func (c *aesGCMCipher) Seal(plaintext, key []byte) ([]byte, error) {
	return c.seal(plaintext, key)
}

// Open implements [Cipher].
func (c *aesGCMCipher) Open(blob, key []byte) ([]byte, error) {
	return c.open(blob, key)
}

// DeriveCacheKey implements [Cipher].
func (c *aesGCMCipher) DeriveCacheKey(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

func (c *aesGCMCipher) seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize(), gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	if _, err = io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *aesGCMCipher) open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
