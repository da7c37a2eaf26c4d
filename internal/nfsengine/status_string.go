package nfsengine

// statusName renders an nfsstat3 code for metric labels and log lines.
// Grounded on the teacher's internal/protocol/nfs/status_string.go, which
// serves the same purpose for its own dispatch table.
func statusName(status uint32) string {
	switch status {
	case NFS3OK:
		return "NFS3_OK"
	case NFS3ErrPerm:
		return "NFS3ERR_PERM"
	case NFS3ErrNoEnt:
		return "NFS3ERR_NOENT"
	case NFS3ErrIO:
		return "NFS3ERR_IO"
	case NFS3ErrNxio:
		return "NFS3ERR_NXIO"
	case NFS3ErrAcces:
		return "NFS3ERR_ACCES"
	case NFS3ErrExist:
		return "NFS3ERR_EXIST"
	case NFS3ErrXdev:
		return "NFS3ERR_XDEV"
	case NFS3ErrNodev:
		return "NFS3ERR_NODEV"
	case NFS3ErrNotDir:
		return "NFS3ERR_NOTDIR"
	case NFS3ErrIsDir:
		return "NFS3ERR_ISDIR"
	case NFS3ErrInval:
		return "NFS3ERR_INVAL"
	case NFS3ErrFbig:
		return "NFS3ERR_FBIG"
	case NFS3ErrNoSpc:
		return "NFS3ERR_NOSPC"
	case NFS3ErrRofs:
		return "NFS3ERR_ROFS"
	case NFS3ErrMlink:
		return "NFS3ERR_MLINK"
	case NFS3ErrNameTooLong:
		return "NFS3ERR_NAMETOOLONG"
	case NFS3ErrNotEmpty:
		return "NFS3ERR_NOTEMPTY"
	case NFS3ErrDquot:
		return "NFS3ERR_DQUOT"
	case NFS3ErrStale:
		return "NFS3ERR_STALE"
	case NFS3ErrNotSupp:
		return "NFS3ERR_NOTSUPP"
	case NFS3ErrServerFault:
		return "NFS3ERR_SERVERFAULT"
	case NFS3ErrJukebox:
		return "NFS3ERR_JUKEBOX"
	default:
		return "NFS3ERR_UNKNOWN"
	}
}
