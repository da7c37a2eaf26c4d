package nfsengine

import (
	"context"
	"sync"
)

// mockDispatcher is a hand-written stub Dispatcher (no gomock/mockery
// dependency, matching how small this contract is). Every method is
// backed by a function field so a test can override exactly the behavior
// it needs; the zero value satisfies Dispatcher but every call panics,
// making an unexpected call in a test loud rather than silently wrong.
type mockDispatcher struct {
	mu sync.Mutex

	getAttrFn   func(ctx context.Context, fh FileHandle) (Stat, error)
	getParentFn func(ctx context.Context, dir FileHandle) (FileHandle, error)
	lookupFn    func(ctx context.Context, dir FileHandle, name string) (FileHandle, Stat, error)
	readLinkFn  func(ctx context.Context, fh FileHandle) (string, error)
	writeFn     func(ctx context.Context, file FileHandle, offset uint64, data []byte) (WriteResult, error)
	createFn    func(ctx context.Context, dir FileHandle, name string, mode uint32) (MutationResult, error)
	mkdirFn     func(ctx context.Context, dir FileHandle, name string, mode uint32) (MutationResult, error)
	statFSFn    func(ctx context.Context, fh FileHandle) (StatFS, error)

	calls []string
}

func (m *mockDispatcher) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockDispatcher) GetAttr(ctx context.Context, fh FileHandle) (Stat, error) {
	m.record("GetAttr")
	return m.getAttrFn(ctx, fh)
}

func (m *mockDispatcher) GetParent(ctx context.Context, dir FileHandle) (FileHandle, error) {
	m.record("GetParent")
	return m.getParentFn(ctx, dir)
}

func (m *mockDispatcher) Lookup(ctx context.Context, dir FileHandle, name string) (FileHandle, Stat, error) {
	m.record("Lookup")
	return m.lookupFn(ctx, dir, name)
}

func (m *mockDispatcher) ReadLink(ctx context.Context, fh FileHandle) (string, error) {
	m.record("ReadLink")
	return m.readLinkFn(ctx, fh)
}

func (m *mockDispatcher) Write(ctx context.Context, file FileHandle, offset uint64, data []byte) (WriteResult, error) {
	m.record("Write")
	return m.writeFn(ctx, file, offset, data)
}

func (m *mockDispatcher) Create(ctx context.Context, dir FileHandle, name string, mode uint32) (MutationResult, error) {
	m.record("Create")
	return m.createFn(ctx, dir, name, mode)
}

func (m *mockDispatcher) Mkdir(ctx context.Context, dir FileHandle, name string, mode uint32) (MutationResult, error) {
	m.record("Mkdir")
	return m.mkdirFn(ctx, dir, name, mode)
}

func (m *mockDispatcher) StatFS(ctx context.Context, fh FileHandle) (StatFS, error) {
	m.record("StatFS")
	return m.statFSFn(ctx, fh)
}

var _ Dispatcher = (*mockDispatcher)(nil)
