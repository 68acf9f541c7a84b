package vbox

import (
	"context"
)

// TakeSnapshot takes a named snapshot of a machine.
func (m *defaultManager) TakeSnapshot(ctx context.Context, vm, name string) error {
	_, err := m.run(ctx, NewCommand("snapshot", vm, "take", name))
	return err
}

// RestoreSnapshot restores a machine to a named snapshot.
func (m *defaultManager) RestoreSnapshot(ctx context.Context, vm, name string) error {
	_, err := m.run(ctx, NewCommand("snapshot", vm, "restore", name))
	return err
}
