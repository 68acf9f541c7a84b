package vbox

import (
	"context"
)

// Start powers up a machine. gui selects the windowed frontend; otherwise the
// machine starts headless. Extra options pass through to `startvm`.
func (m *defaultManager) Start(ctx context.Context, vm string, gui bool, opts ...Option) error {
	frontend := "headless"
	if gui {
		frontend = "gui"
	}
	cmd := NewCommand("startvm", vm).With("type", frontend).WithOptions(opts...)
	_, err := m.run(ctx, cmd)
	return err
}

// Control sends a `controlvm` verb to a running machine.
func (m *defaultManager) Control(ctx context.Context, vm string, action ControlAction) error {
	_, err := m.run(ctx, NewCommand("controlvm", vm, string(action)))
	return err
}

// Modify passes arbitrary options through to `modifyvm`.
func (m *defaultManager) Modify(ctx context.Context, vm string, opts ...Option) error {
	_, err := m.run(ctx, NewCommand("modifyvm", vm).WithOptions(opts...))
	return err
}

// Import imports an appliance (OVA/OVF). The import itself is delegated
// wholesale to the engine.
func (m *defaultManager) Import(ctx context.Context, appliancePath string, opts ...Option) error {
	_, err := m.run(ctx, NewCommand("import", appliancePath).WithOptions(opts...))
	return err
}
