package nfsengine

import "golang.org/x/sys/unix"

// modeToFtype3 maps POSIX S_IS* predicates to ftype3 (spec §4.2). A mode
// with none of the recognized bits is an invariant violation coming from
// the Dispatcher, not a client-triggerable error, so it panics rather than
// synthesizing a status code.
func modeToFtype3(mode uint32) uint32 {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return NF3Reg
	case unix.S_IFDIR:
		return NF3Dir
	case unix.S_IFBLK:
		return NF3Blk
	case unix.S_IFCHR:
		return NF3Chr
	case unix.S_IFLNK:
		return NF3Lnk
	case unix.S_IFSOCK:
		return NF3Sock
	case unix.S_IFIFO:
		return NF3Fifo
	default:
		panic("nfsengine: stat.Mode has no recognized S_IFMT bits")
	}
}

// modeToNfsMode synthesizes the fattr3 mode field. This is the documented
// limitation from spec §4.2/§9-3: real UID/GID/other permission bits are
// not yet plumbed through. It only ever grants the owner and group read,
// the owner write, and owner execute when the source stat had it.
func modeToNfsMode(mode uint32) uint32 {
	const (
		readOwner  = 0o400
		writeOwner = 0o200
		readGroup  = 0o040
		execOwner  = 0o100
	)
	nfsMode := uint32(readOwner | writeOwner | readGroup)
	if mode&unix.S_IXUSR != 0 {
		nfsMode |= execOwner
	}
	return nfsMode
}

// nfsTime narrows POSIX seconds/nanoseconds to nfstime3's unsigned 32-bit
// components. Negative seconds are malformed input per spec §3 and are not
// expected; callers must not pass them (a negative value wraps around when
// narrowed).
func nfsTime(sec, nsec int64) NFSTime {
	return NFSTime{Seconds: uint32(sec), Nseconds: uint32(nsec)}
}

// statToFattr3 implements the stat -> fattr3 conversion of spec §3/§4.2.
// used is always blocks*512, the NFS convention, regardless of the
// filesystem's actual block size.
func statToFattr3(st Stat) NFSAttr {
	return NFSAttr{
		Type:   modeToFtype3(st.Mode),
		Mode:   modeToNfsMode(st.Mode),
		Nlink:  st.Nlink,
		UID:    st.UID,
		GID:    st.GID,
		Size:   st.Size,
		Used:   st.Blocks * 512,
		Rdev:   SpecData{},
		Fsid:   st.Dev,
		Fileid: st.Ino,
		Atime:  nfsTime(st.AtimeSec, st.AtimeNsec),
		Mtime:  nfsTime(st.MtimeSec, st.MtimeNsec),
		Ctime:  nfsTime(st.CtimeSec, st.CtimeNsec),
	}
}

// statToPostOpAttr implements the "absent on error" rule of spec §4.2: the
// caller passes the (stat, error) pair straight from a getattr-shaped
// Dispatcher call.
func statToPostOpAttr(st Stat, err error) PostOpAttr {
	if err != nil {
		return PostOpAttr{}
	}
	return PostOpAttr{Present: true, Attr: statToFattr3(st)}
}

// statToPreOpAttr implements spec §4.2: always present when called, because
// absence is represented one level up (the caller simply doesn't call this
// when no pre-mutation sample exists).
func statToPreOpAttr(st Stat) PreOpAttr {
	return PreOpAttr{
		Present: true,
		Attr: WccAttr{
			Size:  st.Size,
			Mtime: nfsTime(st.MtimeSec, st.MtimeNsec),
			Ctime: nfsTime(st.CtimeSec, st.CtimeNsec),
		},
	}
}

// optionalPreOpAttr is the common pattern of §4.5: a Dispatcher mutation
// result carries an *optional* pre-stat (nil when the dispatcher didn't or
// couldn't sample it).
func optionalPreOpAttr(st *Stat) PreOpAttr {
	if st == nil {
		return PreOpAttr{}
	}
	return statToPreOpAttr(*st)
}

// optionalPostOpAttr mirrors optionalPreOpAttr for the post side.
func optionalPostOpAttr(st *Stat) PostOpAttr {
	if st == nil {
		return PostOpAttr{}
	}
	return PostOpAttr{Present: true, Attr: statToFattr3(*st)}
}
