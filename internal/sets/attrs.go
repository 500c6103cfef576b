package sets

import (
	"fmt"
	"maps"
)

// Reserved attribute tags.
const (
	NameTag  = "n"
	CoverTag = "c"
)

// DecryptFunc decrypts an attribute blob with key into a tag→value map.
type DecryptFunc func(blob, key []byte) (map[string]string, error)

// EncryptFunc encrypts a tag→value map with key into an attribute blob.
type EncryptFunc func(attrs map[string]string, key []byte) ([]byte, error)

// EncryptedAttrs is the attribute container shared by Set and Element.
type EncryptedAttrs struct {
	key []byte

	attrs map[string]string

	// dropped remembers tags removed by a rebase onto droppedFrom so that
	// rebasing again on the same base gives the same result. A different
	// base forgets them.
	dropped     map[string]struct{}
	droppedFrom map[string]string

	encAttrs   []byte
	encPending bool
}

// Key returns the entity key.
func (e *EncryptedAttrs) Key() []byte {
	return e.key
}

// SetKey replaces the entity key.
func (e *EncryptedAttrs) SetKey(key []byte) {
	e.key = key
}

// HasAttrs reports whether a (possibly empty) attribute map is present.
func (e *EncryptedAttrs) HasAttrs() bool {
	return e.attrs != nil
}

// Attrs returns a copy of the attribute map, nil if there is none.
func (e *EncryptedAttrs) Attrs() map[string]string {
	return maps.Clone(e.attrs)
}

// SetName sets the reserved name attribute.
func (e *EncryptedAttrs) SetName(name string) {
	e.SetAttr(NameTag, name)
}

// Name returns the reserved name attribute.
func (e *EncryptedAttrs) Name() string {
	return e.Attr(NameTag)
}

// SetAttr inserts or overwrites tag. An empty value is kept as a deletion
// marker for RebaseCommonAttrsOn.
func (e *EncryptedAttrs) SetAttr(tag, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[tag] = value
	if value != "" {
		delete(e.dropped, tag)
	}
}

// Attr returns the value stored for tag, or an empty string.
func (e *EncryptedAttrs) Attr(tag string) string {
	return e.attrs[tag]
}

// HasAttrChanged reports whether the value of tag differs from the one in
// other. A nil other counts as all tags empty. Call it before swapping maps.
func (e *EncryptedAttrs) HasAttrChanged(tag string, other map[string]string) bool {
	return e.Attr(tag) != other[tag]
}

// RebaseCommonAttrsOn merges the container onto base. Tags of base are kept
// unless the container has the same tag: a non-empty value overrides it, an
// empty value removes it. An empty result releases the map. A nil base is a
// no-op.
func (e *EncryptedAttrs) RebaseCommonAttrsOn(base map[string]string) {
	if base == nil {
		return
	}

	if !maps.Equal(base, e.droppedFrom) {
		e.dropped, e.droppedFrom = nil, nil
	}

	rebased := maps.Clone(base)
	for tag := range e.dropped {
		delete(rebased, tag)
	}
	for tag, value := range e.attrs {
		if value == "" {
			delete(rebased, tag)
			if e.dropped == nil {
				e.dropped = make(map[string]struct{})
			}
			e.dropped[tag] = struct{}{}
			continue
		}
		rebased[tag] = value
	}
	if len(e.dropped) > 0 {
		e.droppedFrom = maps.Clone(base)
	}

	if len(rebased) == 0 {
		e.attrs = nil
		return
	}
	e.attrs = rebased
}

// SetEncryptedAttrs stores blob as the pending attribute payload received from
// the remote authority. An empty blob means the entity has no attributes.
func (e *EncryptedAttrs) SetEncryptedAttrs(blob []byte) {
	e.encAttrs = blob
	e.encPending = true
}

// HasEncryptedAttrs reports whether an attribute blob still waits to be
// decrypted.
func (e *EncryptedAttrs) HasEncryptedAttrs() bool {
	return e.encPending
}

// DecryptAttributes decrypts the pending blob with decrypt. Without a pending
// blob it succeeds without doing anything. On failure the container is left
// untouched and an error wrapping ErrDecryptAttrs is returned.
func (e *EncryptedAttrs) DecryptAttributes(decrypt DecryptFunc) error {
	if !e.encPending {
		return nil
	}

	if len(e.encAttrs) == 0 {
		e.attrs = make(map[string]string)
		e.clearEncrypted()
		return nil
	}

	attrs, err := decrypt(e.encAttrs, e.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptAttrs, err)
	}
	if attrs == nil {
		attrs = make(map[string]string)
	}

	e.attrs = attrs
	e.clearEncrypted()
	return nil
}

// EncryptAttributes returns the attributes encrypted with encrypt, or an
// empty blob when there are none.
func (e *EncryptedAttrs) EncryptAttributes(encrypt EncryptFunc) ([]byte, error) {
	if len(e.attrs) == 0 {
		return []byte{}, nil
	}
	return encrypt(e.attrs, e.key)
}

func (e *EncryptedAttrs) clearEncrypted() {
	e.encAttrs = nil
	e.encPending = false
}

// swapAttrs exchanges the attribute maps of e and other.
func (e *EncryptedAttrs) swapAttrs(other *EncryptedAttrs) {
	e.attrs, other.attrs = other.attrs, e.attrs
	e.dropped, other.dropped = nil, nil
	e.droppedFrom, other.droppedFrom = nil, nil
}
