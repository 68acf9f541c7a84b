package vbox

import (
	"context"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// Info queries a machine's configuration as a fresh key/value map from the
// machine-readable dump. No caching: every call issues a new query.
func (m *defaultManager) Info(ctx context.Context, vm string) (map[string]string, error) {
	out, err := m.run(ctx, NewCommand("showvminfo", vm).WithOptions(Flag("machinereadable")))
	if err != nil {
		return nil, err
	}
	return parseInfo(out), nil
}

// IsRegistered reports whether vm is known to the engine. The underlying info
// query's failure, whatever its cause, deliberately collapses to false; the
// detail is discarded.
func (m *defaultManager) IsRegistered(ctx context.Context, vm string) bool {
	_, err := m.Info(ctx, vm)
	return err == nil
}

// ListVMs returns the registered machines.
func (m *defaultManager) ListVMs(ctx context.Context) ([]VMSummary, error) {
	out, err := m.run(ctx, NewCommand("list", "vms"))
	if err != nil {
		return nil, err
	}
	return parseVMList(out), nil
}

// versionPattern extracts the numeric triple from `--version` output, which
// carries a revision suffix (e.g. "7.0.18r162988").
var versionPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+)`)

// Version reports the engine version.
func (m *defaultManager) Version(ctx context.Context) (*semver.Version, error) {
	out, err := m.run(ctx, NewCommand("--version"))
	if err != nil {
		return nil, err
	}
	match := versionPattern.FindStringSubmatch(trimOutput(out))
	if match == nil {
		return nil, errors.Errorf("unrecognized version output %q", trimOutput(out))
	}
	v, err := semver.NewVersion(match[1])
	if err != nil {
		return nil, errors.Wrapf(err, "parsing version %q", match[1])
	}
	return v, nil
}
