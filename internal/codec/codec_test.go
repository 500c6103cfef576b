package codec

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-cloud-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressed64_Encoding(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want []byte
	}{
		{name: "zero", v: 0, want: []byte{0}},
		{name: "one byte", v: 0x7f, want: []byte{1, 0x7f}},
		{name: "two bytes", v: 0x1234, want: []byte{2, 0x34, 0x12}},
		{name: "max", v: math.MaxUint64, want: []byte{8, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil)
			w.Compressed64(tt.v)
			assert.Equal(t, tt.want, w.Bytes())

			got, err := NewReader(w.Bytes()).Compressed64()
			require.NoError(t, err)
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestReader_AllFieldsInOrder(t *testing.T) {
	w := NewWriter([]byte{})
	w.Handle(models.Handle(0x0102030405060708))
	w.NodeHandle(models.NodeHandle(0xAABBCCDDEEFF))
	w.Compressed64(1700000000)
	w.Str("name")
	w.Bytes32([]byte{1, 2, 3})
	w.U32(7)
	w.I64(-42)
	w.ExpansionFlags()

	r := NewReader(w.Bytes())

	h, err := r.Handle()
	require.NoError(t, err)
	assert.Equal(t, models.Handle(0x0102030405060708), h)

	nh, err := r.NodeHandle()
	require.NoError(t, err)
	assert.Equal(t, models.NodeHandle(0xAABBCCDDEEFF), nh)

	ts, err := r.Compressed64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), ts)

	s, err := r.Str()
	require.NoError(t, err)
	assert.Equal(t, "name", s)

	b, err := r.Bytes32()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	u, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), u)

	i, err := r.I64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	_, err = r.ExpansionFlags(0)
	require.NoError(t, err)
	assert.Zero(t, r.Remaining())
}

func TestReader_ShortReads(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{
			name: "handle",
			data: []byte{1, 2, 3},
			read: func(r *Reader) error { _, err := r.Handle(); return err },
		},
		{
			name: "node handle",
			data: []byte{1, 2, 3, 4, 5},
			read: func(r *Reader) error { _, err := r.NodeHandle(); return err },
		},
		{
			name: "compressed64 empty",
			data: nil,
			read: func(r *Reader) error { _, err := r.Compressed64(); return err },
		},
		{
			name: "compressed64 truncated value",
			data: []byte{4, 1, 2},
			read: func(r *Reader) error { _, err := r.Compressed64(); return err },
		},
		{
			name: "string length past end",
			data: []byte{10, 0, 0, 0, 'a', 'b'},
			read: func(r *Reader) error { _, err := r.Str(); return err },
		},
		{
			name: "string missing length",
			data: []byte{1, 0},
			read: func(r *Reader) error { _, err := r.Str(); return err },
		},
		{
			name: "u32",
			data: []byte{1},
			read: func(r *Reader) error { _, err := r.U32(); return err },
		},
		{
			name: "i64",
			data: []byte{1, 2, 3, 4, 5, 6, 7},
			read: func(r *Reader) error { _, err := r.I64(); return err },
		},
		{
			name: "expansion flags",
			data: []byte{0, 0, 0, 0},
			read: func(r *Reader) error { _, err := r.ExpansionFlags(0); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrShortRead)
		})
	}
}

func TestReader_Compressed64Overflow(t *testing.T) {
	_, err := NewReader([]byte{9, 1, 1, 1, 1, 1, 1, 1, 1, 1}).Compressed64()
	assert.ErrorIs(t, err, ErrCompressedOverflow)
}

func TestReader_ExpansionFlags(t *testing.T) {
	t.Run("used flag is returned", func(t *testing.T) {
		w := NewWriter(nil)
		w.ExpansionFlags(true, false)

		flags, err := NewReader(w.Bytes()).ExpansionFlags(2)
		require.NoError(t, err)
		assert.True(t, flags[0])
		assert.False(t, flags[1])
	})

	t.Run("unknown flag rejects record", func(t *testing.T) {
		w := NewWriter(nil)
		w.ExpansionFlags(false, false, true)

		_, err := NewReader(w.Bytes()).ExpansionFlags(2)
		assert.ErrorIs(t, err, ErrExpansionFlags)
	})
}

func TestReader_Bytes32ReturnsCopy(t *testing.T) {
	w := NewWriter(nil)
	w.Bytes32([]byte{9, 9})
	data := w.Bytes()

	b, err := NewReader(data).Bytes32()
	require.NoError(t, err)

	data[4] = 0
	assert.Equal(t, []byte{9, 9}, b)
}
