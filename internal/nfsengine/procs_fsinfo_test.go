package nfsengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

func TestHandleFsInfoIsStatic(t *testing.T) {
	d := &mockDispatcher{}
	reply := xdr.NewWriter()
	status := handleFsInfo(context.Background(), d, encodeFHArg(1), reply)
	assert.Equal(t, uint32(NFS3OK), status)
	assert.Empty(t, d.calls, "FSINFO never touches the Dispatcher")

	r := xdr.NewReader(reply.Bytes())
	r.Uint32() // accept_stat
	r.Uint32() // nfsstat3
	assert.False(t, r.Bool()) // post_op_attr absent
	assert.Equal(t, uint32(fsInfoMaxIOSize), r.Uint32()) // rtmax
	assert.Equal(t, uint32(fsInfoMaxIOSize), r.Uint32()) // rtpref
	r.Uint32()                                            // rtmult
	assert.Equal(t, uint32(fsInfoMaxIOSize), r.Uint32())  // wtmax
	assert.Equal(t, uint32(fsInfoMaxIOSize), r.Uint32())  // wtpref
	r.Uint32()                                            // wtmult
	assert.Equal(t, uint32(fsInfoMaxIOSize), r.Uint32())  // dtpref
	assert.Equal(t, ^uint64(0), r.Uint64())               // maxfilesize
	sec, nsec := r.NFSTime()
	assert.Equal(t, uint32(0), sec)
	assert.Equal(t, uint32(1), nsec)
	assert.Equal(t, uint32(fsInfoSymlink|fsInfoHomogeneous|fsInfoCanSetTime), r.Uint32())
}
