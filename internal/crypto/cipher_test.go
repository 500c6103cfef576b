package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"testing"
)

func TestEncryptAttrs_RoundTrip(t *testing.T) {
	c := NewCipher()
	key := bytes.Repeat([]byte{0x2A}, 16)

	attrs := map[string]string{"n": "Holidays 2025", "c": "AAAAAAAAAAA", "x": ""}
	blob, err := c.EncryptAttrs(attrs, key)
	if err != nil {
		t.Fatalf("EncryptAttrs error: %v", err)
	}

	got, err := c.DecryptAttrs(blob, key)
	if err != nil {
		t.Fatalf("DecryptAttrs error: %v", err)
	}
	if len(got) != len(attrs) {
		t.Fatalf("got %d attributes, want %d", len(got), len(attrs))
	}
	for tag, value := range attrs {
		if got[tag] != value {
			t.Fatalf("attribute %q = %q, want %q", tag, got[tag], value)
		}
	}
}

func TestDecryptAttrs_NullYieldsEmptyMap(t *testing.T) {
	c := NewCipher()
	key := bytes.Repeat([]byte{0x01}, 32)

	blob, err := c.Seal([]byte("null"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := c.DecryptAttrs(blob, key)
	if err != nil {
		t.Fatalf("DecryptAttrs error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %#v", got)
	}
}

func TestDecryptAttrs_WrongKey(t *testing.T) {
	c := NewCipher()

	blob, err := c.EncryptAttrs(map[string]string{"n": "a"}, bytes.Repeat([]byte{0x01}, 16))
	if err != nil {
		t.Fatalf("EncryptAttrs error: %v", err)
	}

	if _, err = c.DecryptAttrs(blob, bytes.Repeat([]byte{0x02}, 16)); err == nil {
		t.Fatalf("expected authentication failure with the wrong key")
	}
}

func TestDecryptAttrs_NotJSON(t *testing.T) {
	c := NewCipher()
	key := bytes.Repeat([]byte{0x01}, 16)

	blob, _ := c.Seal([]byte("not json"), key)
	if _, err := c.DecryptAttrs(blob, key); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestWrapKey_RoundTrip(t *testing.T) {
	c := NewCipher()

	nodeKey := bytes.Repeat([]byte{0xDD}, 16)
	shareKey := bytes.Repeat([]byte{0x2A}, 16)

	wrapped, err := c.WrapKey(nodeKey, shareKey)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	if bytes.Contains(wrapped, nodeKey) {
		t.Fatalf("wrapped key leaks the plaintext key")
	}

	// the layout is nonce ‖ ciphertext, openable with plain AES-GCM
	block, err := aes.NewCipher(shareKey)
	if err != nil {
		t.Fatalf("aes.NewCipher error: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM error: %v", err)
	}
	plain, err := gcm.Open(nil, wrapped[:gcm.NonceSize()], wrapped[gcm.NonceSize():], nil)
	if err != nil {
		t.Fatalf("gcm.Open error: %v", err)
	}
	if !bytes.Equal(plain, nodeKey) {
		t.Fatalf("unwrapped key mismatch")
	}

	got, err := c.UnwrapKey(wrapped, shareKey)
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}
	if !bytes.Equal(got, nodeKey) {
		t.Fatalf("UnwrapKey mismatch")
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	c := NewCipher()
	key := bytes.Repeat([]byte{0x2A}, 32)

	b1, err := c.Seal([]byte("record"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := c.Seal([]byte("record"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(b1[:12], b2[:12]) {
		t.Fatalf("expected different nonces for two seals")
	}
}

func TestOpen_TooShort(t *testing.T) {
	c := NewCipher()

	_, err := c.Open([]byte{1, 2, 3}, bytes.Repeat([]byte{0x01}, 32))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("err = %v, want ErrCiphertextTooShort", err)
	}
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	c := NewCipher()

	for _, n := range []int{0, 15, 33} {
		_, err := c.Seal([]byte("x"), make([]byte, n))
		if !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("key of %d bytes: err = %v, want ErrInvalidKeyLength", n, err)
		}
	}
}

func TestDeriveCacheKey(t *testing.T) {
	c := NewCipher()
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := c.DeriveCacheKey("secret", salt)
	k2 := c.DeriveCacheKey("secret", salt)
	k3 := c.DeriveCacheKey("secret", bytes.Repeat([]byte{0xAC}, 16))

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for the same secret and salt")
	}
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different salts")
	}
}
