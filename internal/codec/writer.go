package codec

import (
	"encoding/binary"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// ExpansionFlagsSize is the fixed size of the expansion-flags trailer.
const ExpansionFlagsSize = 8

// Writer appends fields to a byte slice. It never fails.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer that appends to buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Handle(h models.Handle) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(h))
}

func (w *Writer) NodeHandle(h models.NodeHandle) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(h))
	w.buf = append(w.buf, b[:models.NodeHandleSize]...)
}

// Compressed64 writes v as a length byte followed by its significant bytes.
func (w *Writer) Compressed64(v uint64) {
	var b [9]byte
	n := 0
	for v != 0 {
		n++
		b[n] = byte(v)
		v >>= 8
	}
	b[0] = byte(n)
	w.buf = append(w.buf, b[:n+1]...)
}

func (w *Writer) Str(s string) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) Bytes32(b []byte) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) I64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

// ExpansionFlags writes the 8-byte trailer. flags[i] sets flag i; at most
// ExpansionFlagsSize flags are used.
func (w *Writer) ExpansionFlags(flags ...bool) {
	var b [ExpansionFlagsSize]byte
	for i := 0; i < len(flags) && i < ExpansionFlagsSize; i++ {
		if flags[i] {
			b[i] = 1
		}
	}
	w.buf = append(w.buf, b[:]...)
}
