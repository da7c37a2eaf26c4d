package xdr

import (
	"bytes"
	"encoding/binary"
)

// Writer is the ReplySink of spec §3: a serialization sink a handler owns
// exclusively for the lifetime of one request.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty reply sink.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated reply bytes.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Uint32 encodes a 4-byte big-endian unsigned integer.
func (w *Writer) Uint32(v uint32) *Writer {
	_ = binary.Write(&w.buf, binary.BigEndian, v)
	return w
}

// Uint64 encodes an 8-byte big-endian unsigned integer.
func (w *Writer) Uint64(v uint64) *Writer {
	_ = binary.Write(&w.buf, binary.BigEndian, v)
	return w
}

// Bool encodes an XDR boolean.
func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.Uint32(1)
	}
	return w.Uint32(0)
}

// Opaque encodes RFC 4506 Section 4.10 variable-length opaque data.
func (w *Writer) Opaque(data []byte) *Writer {
	w.Uint32(uint32(len(data)))
	w.buf.Write(data)
	if pad := (4 - len(data)%4) % 4; pad > 0 {
		w.buf.Write(make([]byte, pad))
	}
	return w
}

// String encodes an XDR string.
func (w *Writer) String(s string) *Writer {
	return w.Opaque([]byte(s))
}

// FileHandle encodes an nfs_fh3 carrying an 8-byte big-endian inode number.
func (w *Writer) FileHandle(fh uint64) *Writer {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], fh)
	return w.Opaque(b[:])
}

// NFSTime encodes an nfstime3.
func (w *Writer) NFSTime(seconds, nseconds uint32) *Writer {
	return w.Uint32(seconds).Uint32(nseconds)
}

// SpecData encodes a specdata3 (device major/minor).
func (w *Writer) SpecData(major, minor uint32) *Writer {
	return w.Uint32(major).Uint32(minor)
}
