package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleGetAttr implements GETATTR (RFC 1813 Section 3.3.1, spec §4.5.2).
func handleGetAttr(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	fh := args.FileHandle()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	st, err := d.GetAttr(ctx, FileHandle(fh))
	status := mapError(err)
	reply.Uint32(status)
	if err != nil {
		return status
	}

	attr := statToFattr3(st)
	encodeFattr3(reply, attr)
	return status
}

// encodeFattr3 writes a full fattr3 (RFC 1813 Section 2.3.1) in field order.
func encodeFattr3(w *xdr.Writer, a NFSAttr) {
	w.Uint32(a.Type)
	w.Uint32(a.Mode)
	w.Uint32(a.Nlink)
	w.Uint32(a.UID)
	w.Uint32(a.GID)
	w.Uint64(a.Size)
	w.Uint64(a.Used)
	w.SpecData(a.Rdev.Major, a.Rdev.Minor)
	w.Uint64(a.Fsid)
	w.Uint64(a.Fileid)
	w.NFSTime(a.Atime.Seconds, a.Atime.Nseconds)
	w.NFSTime(a.Mtime.Seconds, a.Mtime.Nseconds)
	w.NFSTime(a.Ctime.Seconds, a.Ctime.Nseconds)
}

// encodePostOpAttr writes a post_op_attr (RFC 1813 Section 2.6): a presence
// boolean, followed by a full fattr3 only when present.
func encodePostOpAttr(w *xdr.Writer, a PostOpAttr) {
	w.Bool(a.Present)
	if a.Present {
		encodeFattr3(w, a.Attr)
	}
}

// encodeWccAttr writes a wcc_attr (the pre_op_attr operand).
func encodeWccAttr(w *xdr.Writer, a WccAttr) {
	w.Uint64(a.Size)
	w.NFSTime(a.Mtime.Seconds, a.Mtime.Nseconds)
	w.NFSTime(a.Ctime.Seconds, a.Ctime.Nseconds)
}

// encodePreOpAttr writes a pre_op_attr.
func encodePreOpAttr(w *xdr.Writer, a PreOpAttr) {
	w.Bool(a.Present)
	if a.Present {
		encodeWccAttr(w, a.Attr)
	}
}

// encodeWccData writes a wcc_data (RFC 1813 Section 2.6): always both
// halves present on the wire, each individually possibly-absent, per spec
// §3's invariant that mutating replies never omit the field outright.
func encodeWccData(w *xdr.Writer, wcc WccData) {
	encodePreOpAttr(w, wcc.Before)
	encodePostOpAttr(w, wcc.After)
}
