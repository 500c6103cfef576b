package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Reader consumes fields from a byte slice in the order they were written.
type Reader struct {
	data  []byte
	pos   int
	field int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("field %d: need %d bytes, have %d: %w", r.field, n, r.Remaining(), ErrShortRead)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	r.field++
	return b, nil
}

func (r *Reader) Handle() (models.Handle, error) {
	b, err := r.next(models.HandleSize)
	if err != nil {
		return 0, err
	}
	return models.Handle(binary.LittleEndian.Uint64(b)), nil
}

func (r *Reader) NodeHandle() (models.NodeHandle, error) {
	b, err := r.next(models.NodeHandleSize)
	if err != nil {
		return 0, err
	}
	var full [8]byte
	copy(full[:], b)
	return models.NodeHandle(binary.LittleEndian.Uint64(full[:])), nil
}

func (r *Reader) Compressed64() (uint64, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("field %d: %w", r.field, ErrShortRead)
	}
	n := int(r.data[r.pos])
	if n > 8 {
		return 0, fmt.Errorf("field %d: %d bytes: %w", r.field, n, ErrCompressedOverflow)
	}
	b, err := r.next(n + 1)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := n; i >= 1; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

func (r *Reader) Str() (string, error) {
	b, err := r.Bytes32()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bytes32 reads a u32 length-prefixed byte string. The result is a copy.
func (r *Reader) Bytes32() ([]byte, error) {
	l, err := r.next(4)
	if err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(l)
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("field %d: string of %d bytes, have %d: %w", r.field, n, r.Remaining(), ErrShortRead)
	}
	b, err := r.next(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) I64() (int64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ExpansionFlags reads the 8-byte trailer. The first used flags are returned;
// any flag at or beyond used must be zero, otherwise the record was written
// by a newer format this reader cannot interpret.
func (r *Reader) ExpansionFlags(used int) ([ExpansionFlagsSize]bool, error) {
	var flags [ExpansionFlagsSize]bool
	b, err := r.next(ExpansionFlagsSize)
	if err != nil {
		return flags, err
	}
	for i, v := range b {
		if i >= used && v != 0 {
			return flags, fmt.Errorf("flag %d: %w", i, ErrExpansionFlags)
		}
		flags[i] = v != 0
	}
	return flags, nil
}
