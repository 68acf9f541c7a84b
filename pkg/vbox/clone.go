package vbox

import (
	"context"
)

// Clone clones a machine. The new name is injected as a required option
// ahead of any caller options; everything else (register, modes, base folder)
// passes through to `clonevm`.
func (m *defaultManager) Clone(ctx context.Context, vm, newName string, opts ...Option) error {
	cmd := NewCommand("clonevm", vm).With("name", newName).WithOptions(opts...)
	_, err := m.run(ctx, cmd)
	return err
}

// CloneSnapshot clones from a named snapshot. It is Clone with the snapshot
// option pre-filled, not a separate code path.
func (m *defaultManager) CloneSnapshot(ctx context.Context, vm, snapshot, newName string, opts ...Option) error {
	return m.Clone(ctx, vm, newName, append([]Option{Opt("snapshot", snapshot)}, opts...)...)
}
