package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmAsync(d *Dialog, ctx context.Context) chan struct {
	accepted bool
	err      error
} {
	result := make(chan struct {
		accepted bool
		err      error
	}, 1)
	go func() {
		accepted, err := d.Confirm(ctx)
		result <- struct {
			accepted bool
			err      error
		}{accepted, err}
	}()
	return result
}

func resolveEventually(t *testing.T, resolve func() bool) {
	t.Helper()
	require.Eventually(t, resolve, time.Second, time.Millisecond)
}

func TestDialogAccept(t *testing.T) {
	d := &Dialog{}
	result := confirmAsync(d, context.Background())

	resolveEventually(t, d.Accept)

	r := <-result
	require.NoError(t, r.err)
	assert.True(t, r.accepted)
}

func TestDialogReject(t *testing.T) {
	d := &Dialog{}
	result := confirmAsync(d, context.Background())

	resolveEventually(t, d.Reject)

	r := <-result
	require.NoError(t, r.err)
	assert.False(t, r.accepted)
}

func TestDialogContextCancel(t *testing.T) {
	d := &Dialog{}
	ctx, cancel := context.WithCancel(context.Background())
	result := confirmAsync(d, ctx)

	cancel()
	r := <-result
	assert.ErrorIs(t, r.err, context.Canceled)
	assert.False(t, r.accepted)
}

func TestDialogResolveWithoutConfirm(t *testing.T) {
	d := &Dialog{}
	assert.False(t, d.Accept())
	assert.False(t, d.Reject())
}

func TestDialogSerializesConcurrentConfirms(t *testing.T) {
	d := &Dialog{}
	ctx := context.Background()

	first := confirmAsync(d, ctx)
	second := confirmAsync(d, ctx)

	// Only one dialog is outstanding at a time; each resolution releases
	// exactly one caller.
	resolveEventually(t, d.Accept)
	resolveEventually(t, d.Reject)

	results := []bool{(<-first).accepted, (<-second).accepted}
	assert.ElementsMatch(t, []bool{true, false}, results)
}
