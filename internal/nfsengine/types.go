package nfsengine

// FileHandle is the opaque nfs_fh3 this engine hands to and receives from
// the Dispatcher. The engine never interprets its bits; it is a bare u64
// inode number per §3 of the spec (real deployments can widen this, but the
// wire format and the Dispatcher contract are fixed at u64 here).
type FileHandle uint64

// SpecData is rdev3 (RFC 1813 Section 2.5.5): device major/minor. This
// engine never serves block or character devices, so it is always the zero
// value, but the field must still be present on the wire.
type SpecData struct {
	Major uint32
	Minor uint32
}

// NFSTime is nfstime3 (RFC 1813 Section 2.5.2): seconds and nanoseconds
// since the Unix epoch, narrowed to unsigned 32-bit components.
type NFSTime struct {
	Seconds  uint32
	Nseconds uint32
}

// Stat is the POSIX attribute snapshot the Dispatcher returns for any
// inode. It mirrors struct stat closely enough for §4.2's conversions;
// AtimeSec/AtimeNsec etc. use int64 seconds so callers can carry real
// timestamps without truncation until the final narrowing step.
type Stat struct {
	Mode  uint32
	Nlink uint32
	UID   uint32
	GID   uint32
	Size  uint64
	// Blocks is in 512-byte units, matching struct stat's st_blocks; NFS
	// "used" bytes are always Blocks*512 regardless of the underlying
	// filesystem's actual block size (§3 invariant).
	Blocks uint64
	Dev    uint64
	Ino    uint64

	AtimeSec  int64
	AtimeNsec int64
	MtimeSec  int64
	MtimeNsec int64
	CtimeSec  int64
	CtimeNsec int64
}

// NFSAttr is fattr3 (RFC 1813 Section 2.3.1): the full attribute set
// returned on success wherever the protocol requires it.
type NFSAttr struct {
	Type   uint32
	Mode   uint32
	Nlink  uint32
	UID    uint32
	GID    uint32
	Size   uint64
	Used   uint64
	Rdev   SpecData
	Fsid   uint64
	Fileid uint64
	Atime  NFSTime
	Mtime  NFSTime
	Ctime  NFSTime
}

// PostOpAttr is post_op_attr (RFC 1813 Section 2.6): present only when the
// attribute fetch it rides along with succeeded.
type PostOpAttr struct {
	Present bool
	Attr    NFSAttr
}

// WccAttr is wcc_attr's operand (RFC 1813 Section 2.6): the pre-operation
// slice of weak cache consistency data.
type WccAttr struct {
	Size  uint64
	Mtime NFSTime
	Ctime NFSTime
}

// PreOpAttr is pre_op_attr (RFC 1813 Section 2.6): present only when a
// pre-mutation sample was actually taken.
type PreOpAttr struct {
	Present bool
	Attr    WccAttr
}

// WccData is wcc_data (RFC 1813 Section 2.6): the (pre, post) pair attached
// to every mutating operation's reply, success or failure, per §3's
// invariant that failures still carry a structurally valid (if empty)
// wcc_data.
type WccData struct {
	Before PreOpAttr
	After  PostOpAttr
}
