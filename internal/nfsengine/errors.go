package nfsengine

import (
	"context"
	"errors"

	"golang.org/x/sys/unix"
)

// DispatcherError is the error shape every Dispatcher method returns on
// failure. Errno carries the POSIX cause when one exists; when it doesn't
// (a bug, a decode failure, a non-filesystem fault) Errno is zero and Err
// alone drives the mapping in mapError.
type DispatcherError struct {
	Errno unix.Errno
	Err   error
}

func (e *DispatcherError) Error() string {
	if e.Errno != 0 {
		return e.Errno.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "dispatcher error"
}

func (e *DispatcherError) Unwrap() error { return e.Err }

// Errno wraps a POSIX errno as a Dispatcher-facing error.
func Errno(errno unix.Errno) error {
	return &DispatcherError{Errno: errno}
}

// mapError implements the Error Map (spec §4.1), grounded on
// facebook::eden::exceptionToNfsError (original_source/eden/fs/nfs/Nfsd3.cpp).
// Every branch below corresponds to one row of that switch.
func mapError(err error) uint32 {
	if err == nil {
		return NFS3OK
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NFS3ErrJukebox
	}

	var derr *DispatcherError
	if errors.As(err, &derr) && derr.Errno != 0 {
		switch derr.Errno {
		case unix.EPERM:
			return NFS3ErrPerm
		case unix.ENOENT:
			return NFS3ErrNoEnt
		case unix.EIO, unix.ETXTBSY:
			return NFS3ErrIO
		case unix.ENXIO:
			return NFS3ErrNxio
		case unix.EACCES:
			return NFS3ErrAcces
		case unix.EEXIST:
			return NFS3ErrExist
		case unix.EXDEV:
			return NFS3ErrXdev
		case unix.ENODEV:
			return NFS3ErrNodev
		case unix.ENOTDIR:
			return NFS3ErrNotDir
		case unix.EISDIR:
			return NFS3ErrIsDir
		case unix.EINVAL:
			return NFS3ErrInval
		case unix.EFBIG:
			return NFS3ErrFbig
		case unix.EROFS:
			return NFS3ErrRofs
		case unix.EMLINK:
			return NFS3ErrMlink
		case unix.ENAMETOOLONG:
			return NFS3ErrNameTooLong
		case unix.ENOTEMPTY:
			return NFS3ErrNotEmpty
		case unix.EDQUOT:
			return NFS3ErrDquot
		case unix.ESTALE:
			return NFS3ErrStale
		case unix.ETIMEDOUT, unix.EAGAIN, unix.ENOMEM:
			return NFS3ErrJukebox
		case unix.ENOTSUP:
			return NFS3ErrNotSupp
		default:
			// ENFILE and every other errno not named above: SERVERFAULT.
			return NFS3ErrServerFault
		}
	}

	// Non-errno error kind (malformed args, an assertion, anything the
	// Dispatcher raised without a POSIX cause): SERVERFAULT.
	return NFS3ErrServerFault
}
