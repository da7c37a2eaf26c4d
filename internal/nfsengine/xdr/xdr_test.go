package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripScalars(t *testing.T) {
	w := NewWriter()
	w.Uint32(42).Uint64(1 << 40).Bool(true).Bool(false).FileHandle(0xdeadbeef).NFSTime(100, 200)

	r := NewReader(w.Bytes())
	assert.Equal(t, uint32(42), r.Uint32())
	assert.Equal(t, uint64(1<<40), r.Uint64())
	assert.True(t, r.Bool())
	assert.False(t, r.Bool())
	assert.Equal(t, uint64(0xdeadbeef), r.FileHandle())
	sec, nsec := r.NFSTime()
	assert.Equal(t, uint32(100), sec)
	assert.Equal(t, uint32(200), nsec)
	require.NoError(t, r.Err())
}

func TestOpaquePadding(t *testing.T) {
	w := NewWriter()
	w.Opaque([]byte{1, 2, 3})
	// length(4) + 3 bytes + 1 pad byte = 8 bytes total.
	assert.Len(t, w.Bytes(), 8)

	r := NewReader(w.Bytes())
	assert.Equal(t, []byte{1, 2, 3}, r.Opaque())
	require.NoError(t, r.Err())
}

func TestOpaqueEmpty(t *testing.T) {
	w := NewWriter()
	w.Opaque(nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())

	r := NewReader(w.Bytes())
	assert.Empty(t, r.Opaque())
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.String("hello")
	r := NewReader(w.Bytes())
	assert.Equal(t, "hello", r.String())
}

func TestFileHandleWrongLengthFails(t *testing.T) {
	w := NewWriter()
	w.Opaque([]byte{1, 2, 3}) // not 8 bytes
	r := NewReader(w.Bytes())
	r.FileHandle()
	assert.Error(t, r.Err())
}

func TestOpaqueOversizeLengthFails(t *testing.T) {
	w := NewWriter()
	w.Uint32(maxOpaqueLen + 1)
	r := NewReader(w.Bytes())
	r.Opaque()
	assert.Error(t, r.Err())
}

func TestReaderSticksOnFirstError(t *testing.T) {
	r := NewReader([]byte{}) // empty: any read fails
	r.Uint32()
	firstErr := r.Err()
	require.Error(t, firstErr)

	assert.Equal(t, uint32(0), r.Uint32())
	assert.Equal(t, firstErr, r.Err())
}

func TestEncodeMismatchInfo(t *testing.T) {
	w := NewWriter()
	require.NoError(t, EncodeMismatchInfo(w, MismatchInfo{Low: 2, High: 3}))

	r := NewReader(w.Bytes())
	assert.Equal(t, uint32(2), r.Uint32())
	assert.Equal(t, uint32(3), r.Uint32())
}
