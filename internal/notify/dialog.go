package notify

import (
	"context"
	"sync"
)

// Dialog suspends a flow until the user accepts or rejects it. Concurrent
// Confirm calls are serialized so only one decision is outstanding at a
// time.
type Dialog struct {
	serial  sync.Mutex
	mu      sync.Mutex
	pending chan bool
}

// Confirm blocks until Accept or Reject resolves the dialog. Cancelling the
// context abandons the dialog and reports false.
func (d *Dialog) Confirm(ctx context.Context) (bool, error) {
	d.serial.Lock()
	defer d.serial.Unlock()

	decision := make(chan bool, 1)
	d.mu.Lock()
	d.pending = decision
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.pending = nil
		d.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case accepted := <-decision:
		return accepted, nil
	}
}

// Accept resolves the outstanding dialog positively. It reports whether a
// dialog was waiting.
func (d *Dialog) Accept() bool {
	return d.resolve(true)
}

// Reject resolves the outstanding dialog negatively. It reports whether a
// dialog was waiting.
func (d *Dialog) Reject() bool {
	return d.resolve(false)
}

func (d *Dialog) resolve(accepted bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return false
	}
	select {
	case d.pending <- accepted:
		d.pending = nil
		return true
	default:
		return false
	}
}
