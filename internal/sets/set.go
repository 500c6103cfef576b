package sets

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-cloud-keeper/internal/codec"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Set is a named collection of Elements, for example a photo album.
type Set struct {
	EncryptedAttrs
	changeTracker

	id   models.Handle
	user models.Handle
	ts   int64
}

// NewSet returns a Set with the given identity. attrs may be nil.
func NewSet(id models.Handle, key []byte, user models.Handle, attrs map[string]string) *Set {
	return &Set{
		EncryptedAttrs: EncryptedAttrs{key: key, attrs: attrs},
		id:             id,
		user:           user,
	}
}

func (s *Set) ID() models.Handle   { return s.id }
func (s *Set) User() models.Handle { return s.user }
func (s *Set) TS() int64           { return s.ts }

// SetTS sets the last-modified time (unix seconds).
func (s *Set) SetTS(ts int64) {
	s.ts = ts
}

// Cover returns the handle of the cover element, or UndefHandle.
func (s *Set) Cover() models.Handle {
	return models.HandleFromBase64(s.Attr(CoverTag))
}

// SetCover stores h as the cover element. UndefHandle clears the cover.
func (s *Set) SetCover(h models.Handle) {
	if h.IsUndef() {
		s.SetAttr(CoverTag, "")
		return
	}
	s.SetAttr(CoverTag, h.Base64())
}

// UpdateWith merges a newer snapshot of the same Set into s and reports
// whether anything changed. The attribute maps are exchanged, so other must
// not be used afterwards.
func (s *Set) UpdateWith(other *Set) bool {
	s.SetTS(other.ts)

	if s.HasAttrChanged(NameTag, other.attrs) {
		s.SetChanged(ChangeName)
	}
	if s.HasAttrChanged(CoverTag, other.attrs) {
		s.SetChanged(ChangeCover)
	}
	s.swapAttrs(&other.EncryptedAttrs)

	return s.HasChanges()
}

// Serialize appends the cache record of s to buf.
func (s *Set) Serialize(buf []byte) []byte {
	w := codec.NewWriter(buf)

	w.Handle(s.id)
	w.Handle(s.user)
	w.Compressed64(uint64(s.ts))
	w.Bytes32(s.key)
	writeAttrs(w, s.attrs)
	w.ExpansionFlags()

	return w.Bytes()
}

// UnserializeSet restores a Set written by Serialize. The whole record is
// rejected on any decoding failure.
func UnserializeSet(data []byte) (*Set, error) {
	r := codec.NewReader(data)

	id, err := r.Handle()
	if err != nil {
		return nil, corrupt("set id", err)
	}
	user, err := r.Handle()
	if err != nil {
		return nil, corrupt("set owner", err)
	}
	ts, err := r.Compressed64()
	if err != nil {
		return nil, corrupt("set timestamp", err)
	}
	key, err := r.Bytes32()
	if err != nil {
		return nil, corrupt("set key", err)
	}
	attrs, err := readAttrs(r)
	if err != nil {
		return nil, err
	}
	if _, err = r.ExpansionFlags(0); err != nil {
		return nil, corrupt("set expansion flags", err)
	}

	s := NewSet(id, key, user, attrs)
	s.SetTS(int64(ts))
	return s, nil
}

func writeAttrs(w *codec.Writer, attrs map[string]string) {
	w.U32(uint32(len(attrs)))
	for _, tag := range slices.Sorted(maps.Keys(attrs)) {
		w.Str(tag)
		w.Str(attrs[tag])
	}
}

// readAttrs always returns a non-nil map: a record written without
// attributes reads back as an empty attribute map.
func readAttrs(r *codec.Reader) (map[string]string, error) {
	count, err := r.U32()
	if err != nil {
		return nil, corrupt("attribute count", err)
	}

	// every pair takes at least two length prefixes
	if uint64(count)*8 > uint64(r.Remaining()) {
		return nil, corrupt("attribute count", fmt.Errorf("%d attributes in %d bytes: %w", count, r.Remaining(), codec.ErrShortRead))
	}

	attrs := make(map[string]string, count)
	for i := uint32(0); i < count; i++ {
		tag, err := r.Str()
		if err != nil {
			return nil, corrupt("attribute tag", err)
		}
		value, err := r.Str()
		if err != nil {
			return nil, corrupt("attribute value", err)
		}
		attrs[tag] = value
	}
	return attrs, nil
}

func corrupt(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCorruptRecord, field, err)
}
