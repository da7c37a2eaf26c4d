// Package nfsengine implements the NFSv3 (RFC 1813) server protocol engine:
// procedure dispatch, per-procedure request/response handling, attribute
// conversion, and POSIX-to-NFS error mapping. It consumes pre-parsed RPC
// call payloads and produces XDR-encoded reply payloads; RPC framing, XID
// correlation, authentication, and the actual filesystem are the caller's
// responsibility (see Dispatcher).
package nfsengine

// RPC program identity this engine answers to. Anything else yields
// PROG_UNAVAIL at the accept_stat layer.
const (
	NFSProgramNumber uint32 = 100003
	NFSVersion3      uint32 = 3
)

// acceptStat values, RFC 5531 Section 7.1 (called "accept_stat" throughout
// this codebase to match the spec vocabulary).
const (
	AcceptSuccess      uint32 = 0
	AcceptProgUnavail  uint32 = 1
	AcceptProgMismatch uint32 = 2
	AcceptProcUnavail  uint32 = 3
)

// nfsstat3, RFC 1813 Section 2.6.
const (
	NFS3OK              uint32 = 0
	NFS3ErrPerm         uint32 = 1
	NFS3ErrNoEnt        uint32 = 2
	NFS3ErrIO           uint32 = 5
	NFS3ErrNxio         uint32 = 6
	NFS3ErrAcces        uint32 = 13
	NFS3ErrExist        uint32 = 17
	NFS3ErrXdev         uint32 = 18
	NFS3ErrNodev        uint32 = 19
	NFS3ErrNotDir       uint32 = 20
	NFS3ErrIsDir        uint32 = 21
	NFS3ErrInval        uint32 = 22
	NFS3ErrFbig         uint32 = 27
	NFS3ErrNoSpc        uint32 = 28
	NFS3ErrRofs         uint32 = 30
	NFS3ErrMlink        uint32 = 31
	NFS3ErrNameTooLong  uint32 = 63
	NFS3ErrNotEmpty     uint32 = 66
	NFS3ErrDquot        uint32 = 69
	NFS3ErrStale        uint32 = 70
	NFS3ErrRemote       uint32 = 71
	NFS3ErrBadHandle    uint32 = 10001
	NFS3ErrNotSync      uint32 = 10002
	NFS3ErrBadCookie    uint32 = 10003
	NFS3ErrNotSupp      uint32 = 10004
	NFS3ErrTooSmall     uint32 = 10005
	NFS3ErrServerFault  uint32 = 10006
	NFS3ErrBadType      uint32 = 10007
	NFS3ErrJukebox      uint32 = 10008
)

// ftype3, RFC 1813 Section 2.5.1.
const (
	NF3Reg   uint32 = 1
	NF3Dir   uint32 = 2
	NF3Blk   uint32 = 3
	NF3Chr   uint32 = 4
	NF3Lnk   uint32 = 5
	NF3Sock  uint32 = 6
	NF3Fifo  uint32 = 7
)

// stable_how, RFC 1813 Section 3.3.7.
const (
	Unstable  uint32 = 0
	DataSync  uint32 = 1
	FileSync  uint32 = 2
)

// createmode3, RFC 1813 Section 3.3.8.
const (
	CreateUnchecked uint32 = 0
	CreateGuarded   uint32 = 1
	CreateExclusive uint32 = 2
)

// NameMax bounds a single path component, matching POSIX NAME_MAX on most
// systems. LOOKUP rejects longer names with NAMETOOLONG and PATHCONF reports
// it as name_max; CREATE and MKDIR pass names to the Dispatcher unchecked.
const NameMax = 255

// procedure numbers, RFC 1813 Section 3.3. Indices 0..21, exactly the 22
// slots of the Handler Table (§4.3).
const (
	ProcNull uint32 = iota
	ProcGetAttr
	ProcSetAttr
	ProcLookup
	ProcAccess
	ProcReadLink
	ProcRead
	ProcWrite
	ProcCreate
	ProcMkdir
	ProcSymlink
	ProcMknod
	ProcRemove
	ProcRmdir
	ProcRename
	ProcLink
	ProcReadDir
	ProcReadDirPlus
	ProcFsStat
	ProcFsInfo
	ProcPathConf
	ProcCommit
	procTableSize // sentinel; keep last
)
