package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleWrite implements WRITE (RFC 1813 Section 3.3.7, spec §4.5.7).
//
// Known shortcut, kept per spec: committed is always reported as
// FILE_SYNC regardless of the client's requested stability, and verf is
// fixed at 0. A real implementation should honor DATA_SYNC/FILE_SYNC by
// issuing an actual data-sync — that remains a TODO here, same as upstream.
func handleWrite(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	fh := args.FileHandle()
	offset := args.Uint64()
	count := args.Uint32()
	_ = args.Uint32() // stable: accepted but not honored, see doc comment above.
	data := args.Opaque()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	// Clients may over-send; only the first count bytes are meaningful.
	if uint32(len(data)) > count {
		data = data[:count]
	}

	result, err := d.Write(ctx, FileHandle(fh), offset, data)
	status := mapError(err)
	reply.Uint32(status)
	if err != nil {
		encodeWccData(reply, WccData{})
		return status
	}

	if result.Written > 1<<32-1 {
		panic("nfsengine: dispatcher reported a write larger than NFSv3's uint32 count")
	}

	encodeWccData(reply, WccData{
		Before: optionalPreOpAttr(result.PreStat),
		After:  optionalPostOpAttr(result.PostStat),
	})
	reply.Uint32(uint32(result.Written))
	reply.Uint32(FileSync)
	reply.Uint64(0) // writeverf3, fixed at 0 (spec §4.5.7, §9-5).
	return status
}
