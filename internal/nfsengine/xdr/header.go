package xdr

import (
	"bytes"

	goxdr "github.com/rasky/go-xdr/xdr2"
)

// MismatchInfo is the RPC accept-reply trailer that follows a
// PROG_MISMATCH accept_stat (RFC 5531 Section 7.1): the range of program
// versions this server supports. It has no unions or optional fields, so
// unlike the rest of this package it is marshaled through go-xdr's
// reflection-based codec rather than by hand.
type MismatchInfo struct {
	Low  uint32
	High uint32
}

// EncodeMismatchInfo appends a MismatchInfo trailer to w.
func EncodeMismatchInfo(w *Writer, info MismatchInfo) error {
	var buf bytes.Buffer
	if _, err := goxdr.Marshal(&buf, info); err != nil {
		return err
	}
	w.buf.Write(buf.Bytes())
	return nil
}
