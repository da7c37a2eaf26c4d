// Package refdispatcher is an in-memory Dispatcher, grounded on the
// absfs/absfs and absfs/memfs packages, that backs this module's own tests
// and the cmd/vnfsd demo. It is not a production filesystem: memfs keeps
// everything in RAM and StatFS reports synthetic numbers rather than a real
// device's capacity.
package refdispatcher

import (
	"context"
	"os"
	"path"
	"sync"

	"github.com/absfs/absfs"
	"github.com/absfs/memfs"
	"golang.org/x/sys/unix"

	"github.com/vnfsd/vnfsd/internal/nfsengine"
)

const rootHandle nfsengine.FileHandle = 1

// FS adapts an absfs.FileSystem (a memfs.FileSystem in practice) into
// nfsengine.Dispatcher. Every nfsengine.FileHandle is a stable, arbitrary
// identifier this type assigns per path the first time it is seen; it never
// reuses a real inode number from the underlying filesystem because absfs
// doesn't expose one.
type FS struct {
	fs absfs.FileSystem

	mu         sync.RWMutex
	pathByFH   map[nfsengine.FileHandle]string
	fhByPath   map[string]nfsengine.FileHandle
	nextHandle uint64
}

// New builds a Dispatcher over a fresh in-memory filesystem, with "/"
// already bound to the fixed root handle.
func New() (*FS, error) {
	mfs, err := memfs.NewFS()
	if err != nil {
		return nil, err
	}
	d := &FS{
		fs:         mfs,
		pathByFH:   map[nfsengine.FileHandle]string{rootHandle: "/"},
		fhByPath:   map[string]nfsengine.FileHandle{"/": rootHandle},
		nextHandle: uint64(rootHandle),
	}
	return d, nil
}

// Root returns the handle of the filesystem's root directory.
func (d *FS) Root() nfsengine.FileHandle { return rootHandle }

func (d *FS) handleFor(p string) nfsengine.FileHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fh, ok := d.fhByPath[p]; ok {
		return fh
	}
	d.nextHandle++
	fh := nfsengine.FileHandle(d.nextHandle)
	d.fhByPath[p] = fh
	d.pathByFH[fh] = p
	return fh
}

func (d *FS) pathFor(fh nfsengine.FileHandle) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.pathByFH[fh]
	return p, ok
}

func (d *FS) badHandle(fh nfsengine.FileHandle) error {
	return nfsengine.Errno(unix.ESTALE)
}

// translate maps the errors absfs/memfs actually returns (os.PathError
// wrapping os.ErrNotExist/os.ErrExist, or nothing recognizable at all) onto
// the POSIX errno nfsengine's Error Map expects. memfs doesn't return real
// errno values, so this is necessarily approximate.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return nfsengine.Errno(unix.ENOENT)
	case os.IsExist(err):
		return nfsengine.Errno(unix.EEXIST)
	case os.IsPermission(err):
		return nfsengine.Errno(unix.EACCES)
	default:
		return err
	}
}

func statFromInfo(info os.FileInfo) nfsengine.Stat {
	mt := info.ModTime()
	mode := uint32(info.Mode().Perm())
	switch {
	case info.IsDir():
		mode |= unix.S_IFDIR
	case info.Mode()&os.ModeSymlink != 0:
		mode |= unix.S_IFLNK
	default:
		mode |= unix.S_IFREG
	}
	size := uint64(info.Size())
	return nfsengine.Stat{
		Mode:      mode,
		Nlink:     1,
		Size:      size,
		Blocks:    (size + 511) / 512,
		AtimeSec:  mt.Unix(),
		MtimeSec:  mt.Unix(),
		CtimeSec:  mt.Unix(),
	}
}

// GetAttr implements nfsengine.Dispatcher.
func (d *FS) GetAttr(_ context.Context, fh nfsengine.FileHandle) (nfsengine.Stat, error) {
	p, ok := d.pathFor(fh)
	if !ok {
		return nfsengine.Stat{}, d.badHandle(fh)
	}
	info, err := d.fs.Stat(p)
	if err != nil {
		return nfsengine.Stat{}, translate(err)
	}
	st := statFromInfo(info)
	st.Ino = uint64(fh)
	return st, nil
}

// GetParent implements nfsengine.Dispatcher.
func (d *FS) GetParent(_ context.Context, dir nfsengine.FileHandle) (nfsengine.FileHandle, error) {
	p, ok := d.pathFor(dir)
	if !ok {
		return 0, d.badHandle(dir)
	}
	parent := path.Dir(p)
	return d.handleFor(parent), nil
}

// Lookup implements nfsengine.Dispatcher.
func (d *FS) Lookup(_ context.Context, dir nfsengine.FileHandle, name string) (nfsengine.FileHandle, nfsengine.Stat, error) {
	dirPath, ok := d.pathFor(dir)
	if !ok {
		return 0, nfsengine.Stat{}, d.badHandle(dir)
	}
	childPath := path.Join(dirPath, name)
	info, err := d.fs.Stat(childPath)
	if err != nil {
		return 0, nfsengine.Stat{}, translate(err)
	}
	fh := d.handleFor(childPath)
	st := statFromInfo(info)
	st.Ino = uint64(fh)
	return fh, st, nil
}

// ReadLink implements nfsengine.Dispatcher.
func (d *FS) ReadLink(_ context.Context, fh nfsengine.FileHandle) (string, error) {
	p, ok := d.pathFor(fh)
	if !ok {
		return "", d.badHandle(fh)
	}
	symFS, ok := d.fs.(absfs.SymlinkFileSystem)
	if !ok {
		return "", nfsengine.Errno(unix.ENOTSUP)
	}
	target, err := symFS.Readlink(p)
	if err != nil {
		return "", translate(err)
	}
	return target, nil
}

// Write implements nfsengine.Dispatcher.
func (d *FS) Write(_ context.Context, fh nfsengine.FileHandle, offset uint64, data []byte) (nfsengine.WriteResult, error) {
	p, ok := d.pathFor(fh)
	if !ok {
		return nfsengine.WriteResult{}, d.badHandle(fh)
	}

	var pre *nfsengine.Stat
	if info, err := d.fs.Stat(p); err == nil {
		s := statFromInfo(info)
		pre = &s
	}

	f, err := d.fs.OpenFile(p, os.O_WRONLY, 0)
	if err != nil {
		return nfsengine.WriteResult{}, translate(err)
	}
	defer f.Close()

	n, err := f.WriteAt(data, int64(offset))
	if err != nil {
		return nfsengine.WriteResult{}, translate(err)
	}

	var post *nfsengine.Stat
	if info, err := d.fs.Stat(p); err == nil {
		s := statFromInfo(info)
		post = &s
	}

	return nfsengine.WriteResult{Written: uint64(n), PreStat: pre, PostStat: post}, nil
}

// Create implements nfsengine.Dispatcher.
func (d *FS) Create(_ context.Context, dir nfsengine.FileHandle, name string, mode uint32) (nfsengine.MutationResult, error) {
	return d.mutate(dir, name, func(childPath string) error {
		f, err := d.fs.OpenFile(childPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, os.FileMode(mode&0o777))
		if err != nil {
			return err
		}
		return f.Close()
	})
}

// Mkdir implements nfsengine.Dispatcher.
func (d *FS) Mkdir(_ context.Context, dir nfsengine.FileHandle, name string, mode uint32) (nfsengine.MutationResult, error) {
	return d.mutate(dir, name, func(childPath string) error {
		return d.fs.Mkdir(childPath, os.FileMode(mode&0o777))
	})
}

func (d *FS) mutate(dir nfsengine.FileHandle, name string, op func(childPath string) error) (nfsengine.MutationResult, error) {
	dirPath, ok := d.pathFor(dir)
	if !ok {
		return nfsengine.MutationResult{}, d.badHandle(dir)
	}

	var pre *nfsengine.Stat
	if info, err := d.fs.Stat(dirPath); err == nil {
		s := statFromInfo(info)
		pre = &s
	}

	childPath := path.Join(dirPath, name)
	if err := op(childPath); err != nil {
		return nfsengine.MutationResult{}, translate(err)
	}

	info, err := d.fs.Stat(childPath)
	if err != nil {
		return nfsengine.MutationResult{}, translate(err)
	}
	fh := d.handleFor(childPath)
	st := statFromInfo(info)
	st.Ino = uint64(fh)

	var post *nfsengine.Stat
	if dirInfo, err := d.fs.Stat(dirPath); err == nil {
		s := statFromInfo(dirInfo)
		post = &s
	}

	return nfsengine.MutationResult{
		Handle:      fh,
		Stat:        st,
		PreDirStat:  pre,
		PostDirStat: post,
	}, nil
}

// StatFS implements nfsengine.Dispatcher. memfs has no notion of device
// capacity, so this reports fixed, generous numbers rather than anything
// derived from real storage.
func (d *FS) StatFS(_ context.Context, fh nfsengine.FileHandle) (nfsengine.StatFS, error) {
	if _, ok := d.pathFor(fh); !ok {
		return nfsengine.StatFS{}, d.badHandle(fh)
	}
	d.mu.RLock()
	used := d.nextHandle
	d.mu.RUnlock()
	const totalBlocks = 1 << 20 // 4GiB at 4096-byte blocks
	return nfsengine.StatFS{
		BlockSize:   4096,
		Blocks:      totalBlocks,
		BlocksFree:  totalBlocks - used,
		BlocksAvail: totalBlocks - used,
		Files:       1 << 16,
		FilesFree:   (1 << 16) - used,
	}, nil
}
