package nfsengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

func TestHandleReadLinkSuccess(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFLNK}, nil
		},
		readLinkFn: func(_ context.Context, fh FileHandle) (string, error) {
			return "/target/path", nil
		},
	}
	reply := xdr.NewWriter()
	status := handleReadLink(context.Background(), d, encodeFHArg(9), reply)
	assert.Equal(t, uint32(NFS3OK), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32() // accept_stat
	r.Uint32() // nfsstat3
	assert.True(t, r.Bool())
	skipFattr3(r)
	assert.Equal(t, "/target/path", r.String())
}

func TestHandleReadLinkAttrFailureStillReturnsTarget(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{}, Errno(unix.EIO)
		},
		readLinkFn: func(_ context.Context, fh FileHandle) (string, error) {
			return "/still/works", nil
		},
	}
	reply := xdr.NewWriter()
	status := handleReadLink(context.Background(), d, encodeFHArg(9), reply)
	assert.Equal(t, uint32(NFS3OK), status)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32()
	r.Uint32()
	assert.False(t, r.Bool()) // attribute fetch failed independently
	assert.Equal(t, "/still/works", r.String())
}

func TestHandleReadLinkFailure(t *testing.T) {
	d := &mockDispatcher{
		getAttrFn: func(_ context.Context, fh FileHandle) (Stat, error) {
			return Stat{Mode: unix.S_IFLNK}, nil
		},
		readLinkFn: func(_ context.Context, fh FileHandle) (string, error) {
			return "", Errno(unix.EINVAL)
		},
	}
	reply := xdr.NewWriter()
	status := handleReadLink(context.Background(), d, encodeFHArg(9), reply)
	assert.Equal(t, uint32(NFS3ErrInval), status)
}
