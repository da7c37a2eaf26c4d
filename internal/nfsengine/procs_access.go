package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleAccess implements ACCESS (RFC 1813 Section 3.3.4, spec §4.5.5).
//
// Effective access is currently the requested mask echoed back verbatim —
// spec §9-4/§4.5.5 documents this as a known limitation: there is no
// UID/GID-aware evaluation yet, so every caller is told it may do whatever
// it asked to do.
func handleAccess(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	fh := args.FileHandle()
	requested := args.Uint32()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	st, err := d.GetAttr(ctx, FileHandle(fh))
	status := mapError(err)
	reply.Uint32(status)
	encodePostOpAttr(reply, statToPostOpAttr(st, err))
	if err != nil {
		return status
	}
	reply.Uint32(requested)
	return status
}
