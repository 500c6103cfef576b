package sets

import "errors"

var (
	// ErrCorruptRecord is returned by UnserializeSet and UnserializeElement
	// when a cached record cannot be decoded. The record must be treated as
	// missing; the entity can be fetched again from the remote authority.
	ErrCorruptRecord = errors.New("corrupt cache record")

	// ErrDecryptAttrs is returned when the attribute blob cannot be decrypted
	// with the entity key. The container is left untouched and the call can
	// be retried once the right key is available.
	ErrDecryptAttrs = errors.New("failed to decrypt attributes")
)
