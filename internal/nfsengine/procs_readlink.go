package nfsengine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleReadLink implements READLINK (RFC 1813 Section 3.3.5, spec §4.5.6).
// The attribute fetch and the link-target read run concurrently; the
// attribute may itself come back absent if its own fetch failed, even when
// the read succeeds.
func handleReadLink(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	fh := args.FileHandle()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	var st Stat
	var attrErr error
	var target string
	var readErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, attrErr = d.GetAttr(ctx, FileHandle(fh))
		return nil
	})
	g.Go(func() error {
		target, readErr = d.ReadLink(gctx, FileHandle(fh))
		return nil
	})
	_ = g.Wait()

	status := mapError(readErr)
	reply.Uint32(status)
	encodePostOpAttr(reply, statToPostOpAttr(st, attrErr))
	if readErr != nil {
		return status
	}
	reply.String(target)
	return status
}
