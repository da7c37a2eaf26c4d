package nfsengine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

func lookupArgs(dir uint64, name string) *xdr.Reader {
	w := xdr.NewWriter().FileHandle(dir).String(name)
	return xdr.NewReader(w.Bytes())
}

func TestHandleLookupDot(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFDIR | 0o755}, nil
		},
	}
	reply := xdr.NewWriter()
	status := handleLookup(context.Background(), d, lookupArgs(7, "."), reply)
	assert.Equal(t, uint32(NFS3OK), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32() // accept_stat
	r.Uint32() // nfsstat3
	assert.Equal(t, uint64(7), r.FileHandle())
}

func TestHandleLookupDotDot(t *testing.T) {
	d := &mockDispatcher{
		getParentFn: func(_ context.Context, dir FileHandle) (FileHandle, error) {
			return FileHandle(1), nil
		},
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFDIR | 0o755}, nil
		},
	}
	reply := xdr.NewWriter()
	status := handleLookup(context.Background(), d, lookupArgs(7, ".."), reply)
	assert.Equal(t, uint32(NFS3OK), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32()
	r.Uint32()
	assert.Equal(t, uint64(1), r.FileHandle())
}

func TestHandleLookupNameTooLong(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFDIR | 0o755}, nil
		},
	}
	reply := xdr.NewWriter()
	longName := strings.Repeat("a", NameMax+1)
	status := handleLookup(context.Background(), d, lookupArgs(7, longName), reply)
	assert.Equal(t, uint32(NFS3ErrNameTooLong), status)
	assert.Equal(t, []string{"GetAttr"}, d.calls, "lookup must not run past the NAME_MAX check")
}

func TestHandleLookupOrdinaryName(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFDIR | 0o755}, nil
		},
		lookupFn: func(_ context.Context, dir FileHandle, name string) (FileHandle, Stat, error) {
			assert.Equal(t, "foo.txt", name)
			return FileHandle(55), Stat{Mode: unix.S_IFREG | 0o644}, nil
		},
	}
	reply := xdr.NewWriter()
	status := handleLookup(context.Background(), d, lookupArgs(7, "foo.txt"), reply)
	assert.Equal(t, uint32(NFS3OK), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32()
	r.Uint32()
	assert.Equal(t, uint64(55), r.FileHandle())
}

func TestHandleLookupFailurePropagatesDirAttrs(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFDIR | 0o755}, nil
		},
		lookupFn: func(_ context.Context, dir FileHandle, name string) (FileHandle, Stat, error) {
			return 0, Stat{}, Errno(unix.ENOENT)
		},
	}
	reply := xdr.NewWriter()
	status := handleLookup(context.Background(), d, lookupArgs(7, "missing"), reply)
	assert.Equal(t, uint32(NFS3ErrNoEnt), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32()
	r.Uint32()
	assert.True(t, r.Bool()) // dir post_op_attr present
}
