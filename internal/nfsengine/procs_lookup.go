package nfsengine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleLookup implements LOOKUP (RFC 1813 Section 3.3.3, spec §4.5.4).
//
// The directory's post-op attributes are fetched concurrently with the
// name resolution itself: both are always needed, so there is no reason to
// serialize them. "." and ".." are resolved locally against the
// Dispatcher's getattr/getParent rather than treated as ordinary names.
func handleLookup(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	dir := args.FileHandle()
	name := args.String()
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	var dirStat Stat
	var dirErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dirStat, dirErr = d.GetAttr(ctx, FileHandle(dir))
		return nil
	})

	if len(name) > NameMax {
		_ = g.Wait()
		status := NFS3ErrNameTooLong
		reply.Uint32(status)
		encodePostOpAttr(reply, statToPostOpAttr(dirStat, dirErr))
		return status
	}

	var childFH FileHandle
	var childStat Stat
	var lookupErr error
	g.Go(func() error {
		switch name {
		case ".":
			childFH = FileHandle(dir)
			childStat, lookupErr = d.GetAttr(gctx, FileHandle(dir))
		case "..":
			var parent FileHandle
			parent, lookupErr = d.GetParent(gctx, FileHandle(dir))
			if lookupErr == nil {
				childFH = parent
				childStat, lookupErr = d.GetAttr(gctx, parent)
			}
		default:
			childFH, childStat, lookupErr = d.Lookup(gctx, FileHandle(dir), name)
		}
		return nil
	})
	_ = g.Wait()

	status := mapError(lookupErr)
	reply.Uint32(status)
	if lookupErr != nil {
		encodePostOpAttr(reply, statToPostOpAttr(dirStat, dirErr))
		return status
	}

	reply.FileHandle(uint64(childFH))
	encodePostOpAttr(reply, statToPostOpAttr(childStat, nil))
	encodePostOpAttr(reply, statToPostOpAttr(dirStat, dirErr))
	return status
}
