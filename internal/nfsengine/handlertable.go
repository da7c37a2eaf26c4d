package nfsengine

import (
	"context"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// ProcHandler is the shape of every per-procedure handler (spec §4.5): it
// owns the reply sink exclusively for the call, writes the accept_stat
// itself (SUCCESS with a body, or PROC_UNAVAIL with none), and never
// returns an error — every failure path still produces a well-formed
// reply. It returns the nfsstat3 it wrote into the body, or noNFSStatus for
// the PROC_UNAVAIL-only handlers that never reach a body; the Router uses
// this purely for the status_total metric, never for control flow.
type ProcHandler func(ctx context.Context, d Dispatcher, args *xdr.Reader, reply *xdr.Writer) uint32

// noNFSStatus marks a reply that ended at the accept_stat layer and never
// wrote an nfsstat3 body.
const noNFSStatus = ^uint32(0)

// procEntry is one slot of the Handler Table (spec §4.3).
type procEntry struct {
	Name    string
	Handler ProcHandler
}

// handlerTable is the fixed 22-slot table, index = NFSv3 procedure number.
// Every index 0..21 is populated: the twelve procedures spec.md brings into
// scope get a real handler; the other ten get unimplementedHandler, which
// writes PROC_UNAVAIL and nothing else.
var handlerTable = [procTableSize]procEntry{
	ProcNull:        {"NULL", handleNull},
	ProcGetAttr:     {"GETATTR", handleGetAttr},
	ProcSetAttr:     {"SETATTR", unimplementedHandler},
	ProcLookup:      {"LOOKUP", handleLookup},
	ProcAccess:      {"ACCESS", handleAccess},
	ProcReadLink:    {"READLINK", handleReadLink},
	ProcRead:        {"READ", unimplementedHandler},
	ProcWrite:       {"WRITE", handleWrite},
	ProcCreate:      {"CREATE", handleCreate},
	ProcMkdir:       {"MKDIR", handleMkdir},
	ProcSymlink:     {"SYMLINK", unimplementedHandler},
	ProcMknod:       {"MKNOD", unimplementedHandler},
	ProcRemove:      {"REMOVE", unimplementedHandler},
	ProcRmdir:       {"RMDIR", unimplementedHandler},
	ProcRename:      {"RENAME", unimplementedHandler},
	ProcLink:        {"LINK", handleLink},
	ProcReadDir:     {"READDIR", unimplementedHandler},
	ProcReadDirPlus: {"READDIRPLUS", unimplementedHandler},
	ProcFsStat:      {"FSSTAT", handleFsStat},
	ProcFsInfo:      {"FSINFO", handleFsInfo},
	ProcPathConf:    {"PATHCONF", handlePathConf},
	ProcCommit:      {"COMMIT", unimplementedHandler},
}
