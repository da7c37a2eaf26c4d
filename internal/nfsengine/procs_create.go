package nfsengine

import (
	"context"

	"github.com/go-kit/log/level"
	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// sattr3 fields this engine actually honors: mode, when set. Every other
// field (uid, gid, size, atime, mtime) is decoded off the wire so the
// stream stays aligned, then discarded — spec §9-6 notes full sattr3
// honoring in CREATE/MKDIR remains a TODO.
type sattr3 struct {
	HasMode bool
	Mode    uint32
}

func decodeSattr3(args *xdr.Reader) sattr3 {
	var s sattr3
	if s.HasMode = args.Bool(); s.HasMode {
		s.Mode = args.Uint32()
	}
	if args.Bool() { // set_uid
		args.Uint32()
	}
	if args.Bool() { // set_gid
		args.Uint32()
	}
	if args.Bool() { // set_size
		args.Uint64()
	}
	switch args.Uint32() { // set_atime: DONT_CHANGE=0, SERVER_TIME=1, CLIENT_TIME=2
	case 2:
		args.NFSTime()
	}
	switch args.Uint32() { // set_mtime
	case 2:
		args.NFSTime()
	}
	return s
}

// handleCreate implements CREATE (RFC 1813 Section 3.3.8, spec §4.5.8).
func handleCreate(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32 {
	dir := args.FileHandle()
	name := args.String()
	how := args.Uint32()

	var attrs sattr3
	if how == CreateExclusive {
		args.Opaque() // createverf3: accepted, unused (see spec §4.5.8/§9-5).
	} else {
		attrs = decodeSattr3(args)
	}
	reply.Uint32(AcceptSuccess)

	if args.Err() != nil {
		reply.Uint32(NFS3ErrServerFault)
		return NFS3ErrServerFault
	}

	if how == CreateExclusive {
		status := NFS3ErrNotSupp
		reply.Uint32(status)
		encodeCreateFail(reply)
		return status
	}

	mode := uint32(unix.S_IFREG | 0o644)
	if attrs.HasMode {
		mode = unix.S_IFREG | (attrs.Mode &^ unix.S_IFMT)
	}

	result, err := d.Create(ctx, FileHandle(dir), name, mode)
	if err != nil {
		var derr *DispatcherError
		if de, ok := err.(*DispatcherError); ok {
			derr = de
		}
		if how == CreateUnchecked && derr != nil && derr.Errno == unix.EEXIST {
			// Forces the client to LOOKUP for the winner of the race.
			level.Warn(loggerFrom(ctx)).Log("procedure", "CREATE", "dir", dir, "name", name,
				"msg", "UNCHECKED create raced an existing file, deferring to client LOOKUP")
			status := NFS3OK
			reply.Uint32(status)
			reply.Bool(false) // post_op_fh3 absent
			encodePostOpAttr(reply, PostOpAttr{})
			encodeWccData(reply, WccData{})
			return status
		}
		status := mapError(err)
		reply.Uint32(status)
		encodeCreateFail(reply)
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

func encodeCreateFail(w *xdr.Writer) {
	encodeWccData(w, WccData{})
}
