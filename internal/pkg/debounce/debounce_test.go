package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleCancelAndRestart(t *testing.T) {
	d := New(30 * time.Millisecond)
	var got atomic.Int32

	d.Schedule(func() { got.Store(1) })
	d.Schedule(func() { got.Store(2) })
	d.Schedule(func() { got.Store(3) })

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(3), got.Load(), "only the last scheduled task runs")
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	d := New(time.Hour)
	var ran atomic.Bool

	d.Schedule(func() { ran.Store(true) })
	d.Flush()
	assert.True(t, ran.Load())

	// second flush is a no-op
	d.Flush()
}

func TestStopDropsPending(t *testing.T) {
	d := New(10 * time.Millisecond)
	var ran atomic.Bool

	d.Schedule(func() { ran.Store(true) })
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.False(t, ran.Load())
}
