package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// unimplementedHandler backs the ten NFSv3 procedures this engine does not
// implement (spec §1 Non-goals: SETATTR, READ, SYMLINK, MKNOD, REMOVE,
// RMDIR, RENAME, READDIR, READDIRPLUS, COMMIT). It never touches the
// Dispatcher or decodes args; it writes accept_stat = PROC_UNAVAIL and
// nothing else, per spec §4.5.3 and the universal property in §8.
func unimplementedHandler(_ context.Context, _ Dispatcher, _ *xdr.Reader, reply *xdr.Writer) uint32 {
	reply.Uint32(AcceptProcUnavail)
	return noNFSStatus
}
