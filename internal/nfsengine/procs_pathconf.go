package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handlePathConf implements PATHCONF (RFC 1813 Section 3.3.20, spec
// §4.5.13). Every field but case_insensitive is static; that one field is
// pulled from the Façade's Config so it agrees with whatever the backing
// Dispatcher actually does.
func handlePathConf(ctx context.Context, _ Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	args.FileHandle()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	status := NFS3OK
	reply.Uint32(status)
	encodePostOpAttr(reply, PostOpAttr{})
	reply.Uint32(0)        // linkmax: hard links unsupported.
	reply.Uint32(NameMax)  // name_max
	reply.Bool(true)       // no_trunc
	reply.Bool(true)       // chown_restricted
	reply.Bool(!configFrom(ctx).CaseSensitive)
	reply.Bool(true) // case_preserving
	return status
}
