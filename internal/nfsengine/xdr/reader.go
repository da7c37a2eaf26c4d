// Package xdr provides the wire-level read/write primitives the nfsengine
// procedure handlers use to decode arguments and encode results. RFC 1813's
// discriminated unions and optional fields (post_op_attr, wcc_data, the
// createhow3 union, every procedure's result union) don't map cleanly onto
// reflection-driven codecs, so this package hand-rolls them the way the
// teacher (marmos91/dnfs, internal/protocol/nfs/xdr) does. Fixed,
// union-free structures (the RPC accept-reply's mismatch_info) instead go
// through github.com/rasky/go-xdr/xdr2 — see header.go.
package xdr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxOpaqueLen bounds any single variable-length opaque or string field
// this engine will decode, protecting against a malicious or corrupt
// length prefix driving an enormous allocation.
const maxOpaqueLen = 1 << 20 // 1 MiB

// Reader is the ArgCursor of spec §3: a deserialization cursor over one
// procedure's argument bytes.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps a procedure's raw argument bytes for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{r: newByteReader(data)}
}

// Err returns the first error encountered by any Reader method, or nil.
// Once set, all further reads are no-ops returning zero values, so callers
// can chain several reads and check Err once at the end.
func (r *Reader) Err() error { return r.err }

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Uint32 decodes a 4-byte big-endian unsigned integer.
func (r *Reader) Uint32() uint32 {
	if r.err != nil {
		return 0
	}
	var v uint32
	if err := binary.Read(r.r, binary.BigEndian, &v); err != nil {
		r.fail(fmt.Errorf("xdr: read uint32: %w", err))
		return 0
	}
	return v
}

// Uint64 decodes an 8-byte big-endian unsigned integer.
func (r *Reader) Uint64() uint64 {
	if r.err != nil {
		return 0
	}
	var v uint64
	if err := binary.Read(r.r, binary.BigEndian, &v); err != nil {
		r.fail(fmt.Errorf("xdr: read uint64: %w", err))
		return 0
	}
	return v
}

// Bool decodes an XDR boolean (a uint32, 0 or 1).
func (r *Reader) Bool() bool {
	return r.Uint32() != 0
}

// Opaque decodes RFC 4506 Section 4.10 variable-length opaque data: a
// length prefix, the bytes, then zero-padding to the next 4-byte boundary.
func (r *Reader) Opaque() []byte {
	if r.err != nil {
		return nil
	}
	length := r.Uint32()
	if r.err != nil {
		return nil
	}
	if length > maxOpaqueLen {
		r.fail(fmt.Errorf("xdr: opaque length %d exceeds %d byte limit", length, maxOpaqueLen))
		return nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.fail(fmt.Errorf("xdr: read opaque body: %w", err))
		return nil
	}
	r.skipPadding(length)
	return buf
}

// String decodes an XDR string (RFC 4506 Section 4.11): identical wire
// shape to Opaque, interpreted as UTF-8/ASCII text.
func (r *Reader) String() string {
	return string(r.Opaque())
}

// FileHandle decodes an nfs_fh3 (RFC 1813 Section 2.3.3): variable-length
// opaque data up to 64 bytes, which this engine always populates with an
// 8-byte big-endian inode number (spec §3: "opaque u64 InodeNumber").
func (r *Reader) FileHandle() uint64 {
	data := r.Opaque()
	if r.err != nil {
		return 0
	}
	if len(data) != 8 {
		r.fail(fmt.Errorf("xdr: file handle length %d, want 8", len(data)))
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

// NFSTime decodes an nfstime3 (seconds, nseconds).
func (r *Reader) NFSTime() (uint32, uint32) {
	return r.Uint32(), r.Uint32()
}

func (r *Reader) skipPadding(length uint32) {
	pad := (4 - length%4) % 4
	if pad == 0 {
		return
	}
	buf := make([]byte, pad)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.fail(fmt.Errorf("xdr: read padding: %w", err))
	}
}

func newByteReader(data []byte) io.Reader {
	return &sliceReader{data: data}
}

// sliceReader is a minimal io.Reader over a byte slice; avoids pulling in
// bytes.Reader just for Read semantics we don't otherwise need.
type sliceReader struct {
	data []byte
	pos  int
}

func (s *sliceReader) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}
