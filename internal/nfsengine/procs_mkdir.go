package nfsengine

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// handleMkdir implements MKDIR (RFC 1813 Section 3.3.9, spec §4.5.9).
func handleMkdir(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	dir := args.FileHandle()
	name := args.String()
	attrs := decodeSattr3(args)
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	if name == "." || name == ".." {
		status := NFS3ErrExist
		reply.Uint32(status)
		encodeWccData(reply, WccData{})
		return status
	}

	mode := uint32(unix.S_IFDIR | 0o751)
	if attrs.HasMode {
		mode = unix.S_IFDIR | (attrs.Mode &^ unix.S_IFMT)
	}

	result, err := d.Mkdir(ctx, FileHandle(dir), name, mode)
	if err != nil {
		status := mapError(err)
		reply.Uint32(status)
		encodeWccData(reply, WccData{})
		return status
	}

	status := NFS3OK
	reply.Uint32(status)
	reply.Bool(true)
	reply.FileHandle(uint64(result.Handle))
	encodePostOpAttr(reply, statToPostOpAttr(result.Stat, nil))
	encodeWccData(reply, WccData{
		Before: optionalPreOpAttr(result.PreDirStat),
		After:  optionalPostOpAttr(result.PostDirStat),
	})
	return status
}
