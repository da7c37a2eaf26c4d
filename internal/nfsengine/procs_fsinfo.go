package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

const (
	fsInfoMaxIOSize    = 1048576
	fsInfoTransferMult = 1

	// fsinfo3 properties bitmap (RFC 1813 Section 3.3.19). FSF_LINK is
	// omitted: LINK always replies NOTSUPP, so advertising link support
	// here would contradict that.
	fsInfoSymlink     = 0x0002
	fsInfoHomogeneous = 0x0008
	fsInfoCanSetTime  = 0x0010
)

// handleFsInfo implements FSINFO (RFC 1813 Section 3.3.19, spec §4.5.12).
// Every value is static: this engine reports the same capabilities for any
// object, and doesn't touch the Dispatcher at all.
func handleFsInfo(_ context.Context, _ Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	args.FileHandle()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	status := NFS3OK
	reply.Uint32(status)
	encodePostOpAttr(reply, PostOpAttr{})
	reply.Uint32(fsInfoMaxIOSize) // rtmax
	reply.Uint32(fsInfoMaxIOSize) // rtpref
	reply.Uint32(fsInfoTransferMult)
	reply.Uint32(fsInfoMaxIOSize) // wtmax
	reply.Uint32(fsInfoMaxIOSize) // wtpref
	reply.Uint32(fsInfoTransferMult)
	reply.Uint32(fsInfoMaxIOSize) // dtpref
	reply.Uint64(^uint64(0))      // maxfilesize
	reply.NFSTime(0, 1)           // time_delta
	reply.Uint32(fsInfoSymlink | fsInfoHomogeneous | fsInfoCanSetTime)
	return status
}
