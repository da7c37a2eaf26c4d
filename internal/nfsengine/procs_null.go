package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleNull implements NULL (RFC 1813 Section 3.3.0, spec §4.5.1): no
// args, no body, used by clients purely to test connectivity.
func handleNull(_ context.Context, _ Dispatcher, _ *xdr.Reader, reply *xdr.Writer) uint32 {
	reply.Uint32(AcceptSuccess)
	return NFS3OK
}
