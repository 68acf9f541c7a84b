package vbox

import (
	"context"
	"time"
)

// ipPropertyKey is the guest property the integration service fills in once
// the guest obtains a DHCP lease on its first interface.
const ipPropertyKey = "/VirtualBox/GuestInfo/Net/0/V4/IP"

// ipPollInterval is the fixed delay between WaitForIP attempts.
const ipPollInterval = time.Second

// GetProperty reads one guest property. ok is false when the property has no
// value; that is a normal result, not an error.
func (m *defaultManager) GetProperty(ctx context.Context, vm, key string) (string, bool, error) {
	out, err := m.run(ctx, NewCommand("guestproperty", "get", vm, key))
	if err != nil {
		return "", false, err
	}
	value, ok := parseProperty(out)
	return value, ok, nil
}

// SetProperty sets one guest property.
func (m *defaultManager) SetProperty(ctx context.Context, vm, key, value string) error {
	_, err := m.run(ctx, NewCommand("guestproperty", "set", vm, key, value))
	return err
}

// DeleteProperty deletes one guest property.
func (m *defaultManager) DeleteProperty(ctx context.Context, vm, key string) error {
	_, err := m.run(ctx, NewCommand("guestproperty", "delete", vm, key))
	return err
}

// WaitForIP polls the IPv4 guest property on a fixed interval until a value
// appears. A negative timeout means wait indefinitely. For a bounded wait the
// remaining time is checked BEFORE sleeping: when less than one full interval
// remains the poll gives up immediately rather than overshooting the
// deadline. Attempts are serialized, one in flight at a time; cancel ctx to
// stop early.
func (m *defaultManager) WaitForIP(ctx context.Context, vm string, timeout time.Duration) (string, bool, error) {
	unbounded := timeout < 0
	deadline := time.Now().Add(timeout)

	for {
		ip, ok, err := m.GetProperty(ctx, vm, ipPropertyKey)
		if err != nil {
			return "", false, err
		}
		if ok {
			return ip, true, nil
		}

		if !unbounded && time.Until(deadline) <= ipPollInterval {
			return "", false, nil
		}

		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-time.After(ipPollInterval):
		}
	}
}
