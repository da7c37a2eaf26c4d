package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleLink implements LINK (RFC 1813 Section 3.3.15, spec §4.5.10). Hard
// links are not supported by this engine; the Dispatcher is never asked to
// create one. The source object's post_op_attr is still fetched and
// reported, matching the wire shape a real LINK failure would produce.
func handleLink(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	fh := args.FileHandle()
	_ = args.FileHandle() // link directory: unused, target is always rejected.
	_ = args.String()     // link name: unused.
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	st, attrErr := d.GetAttr(ctx, FileHandle(fh))
	status := NFS3ErrNotSupp
	reply.Uint32(status)
	encodePostOpAttr(reply, statToPostOpAttr(st, attrErr))
	encodeWccData(reply, WccData{})
	return status
}
