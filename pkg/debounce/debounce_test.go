package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigger_FiresAfterQuiescence(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })

	require.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestTrigger_RestartCancelsPending(t *testing.T) {
	d := New(40 * time.Millisecond)

	var got atomic.Int32
	d.Trigger(func() { got.Store(1) })

	// Re-trigger inside the window; the first schedule must never fire.
	time.Sleep(10 * time.Millisecond)
	d.Trigger(func() { got.Store(2) })

	require.Eventually(t, func() bool {
		return got.Load() != 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(2), got.Load())
}

func TestTrigger_BurstCoalescesToOneInvocation(t *testing.T) {
	d := New(30 * time.Millisecond)

	var fired atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestStop_CancelsPending(t *testing.T) {
	d := New(30 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	require.True(t, d.Stop())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestStop_NothingPending(t *testing.T) {
	d := New(30 * time.Millisecond)
	assert.False(t, d.Stop())
}
