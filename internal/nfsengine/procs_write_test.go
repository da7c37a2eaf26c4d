package nfsengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

func writeArgs(fh uint64, offset uint64, count uint32, stable uint32, data []byte) *xdr.Reader {
	w := xdr.NewWriter().FileHandle(fh).Uint64(offset).Uint32(count).Uint32(stable).Opaque(data)
	return xdr.NewReader(w.Bytes())
}

func TestHandleWriteEightKilobytes(t *testing.T) {
	payload := make([]byte, 8192)
	var written []byte
	d := &mockDispatcher{
		writeFn: func(_ context.Context, file FileHandle, offset uint64, data []byte) (WriteResult, error) {
			written = data
			return WriteResult{Written: uint64(len(data))}, nil
		},
	}
	reply := xdr.NewWriter()
	status := handleWrite(context.Background(), d, writeArgs(1, 0, uint32(len(payload)), FileSync, payload), reply)
	assert.Equal(t, uint32(NFS3OK), status)
	assert.Len(t, written, 8192)

	r := xdr.NewReader(reply.Bytes())
	r.Uint32() // accept_stat
	r.Uint32() // nfsstat3
	r.Bool()   // wcc before
	r.Bool()   // wcc after
	assert.Equal(t, uint32(8192), r.Uint32()) // count
	assert.Equal(t, FileSync, r.Uint32())     // committed, always FILE_SYNC
	assert.Equal(t, uint64(0), r.Uint64())    // writeverf3
}

func TestHandleWriteTruncatesOversentData(t *testing.T) {
	var got []byte
	d := &mockDispatcher{
		writeFn: func(_ context.Context, file FileHandle, offset uint64, data []byte) (WriteResult, error) {
			got = data
			return WriteResult{Written: uint64(len(data))}, nil
		},
	}
	reply := xdr.NewWriter()
	handleWrite(context.Background(), d, writeArgs(1, 0, 4, Unstable, []byte{1, 2, 3, 4, 5, 6}), reply)
	assert.Len(t, got, 4)
}

func TestHandleWriteFailure(t *testing.T) {
	d := &mockDispatcher{
		writeFn: func(_ context.Context, file FileHandle, offset uint64, data []byte) (WriteResult, error) {
			return WriteResult{}, Errno(unix.EROFS)
		},
	}
	reply := xdr.NewWriter()
	status := handleWrite(context.Background(), d, writeArgs(1, 0, 4, FileSync, []byte{1, 2, 3, 4}), reply)
	assert.Equal(t, uint32(NFS3ErrRofs), status)
}
