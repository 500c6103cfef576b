package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher bundles the symmetric primitives the client needs around Sets,
// Elements and nodes. It knows nothing about storage or the node graph.
//
// Every blob produced here has the layout nonce ‖ ciphertext (AES-GCM).
type Cipher interface {
	// EncryptAttrs serializes attrs to JSON and seals it with key.
	// Usable as sets.EncryptFunc.
	EncryptAttrs(attrs map[string]string, key []byte) ([]byte, error)

	// DecryptAttrs reverses EncryptAttrs. Usable as sets.DecryptFunc.
	DecryptAttrs(blob, key []byte) (map[string]string, error)

	// WrapKey encrypts a node key with a share key.
	WrapKey(key, shareKey []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey.
	UnwrapKey(wrapped, shareKey []byte) ([]byte, error)

	// Seal encrypts a local cache record with the cache key.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open reverses Seal.
	Open(blob, key []byte) ([]byte, error)

	// DeriveCacheKey derives the 256-bit cache key from the configured
	// secret and a per-database salt through Argon2id.
	DeriveCacheKey(secret string, salt []byte) []byte
}
