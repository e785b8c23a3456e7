package animator

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimerSchedulerInterval(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Second/60, NewTimerScheduler(0, nil).Interval())
	require.Equal(t, time.Second/120, NewTimerScheduler(120, nil).Interval())
}

func TestTimerSchedulerUsesClock(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	sched := NewTimerScheduler(1000, clock)

	got := make(chan time.Time, 1)
	sched.RequestFrame(func(now time.Time) { got <- now })

	select {
	case now := <-got:
		require.Equal(t, epoch, now)
	case <-time.After(2 * time.Second):
		t.Fatal("frame never fired")
	}
}

func TestTimerSchedulerCancel(t *testing.T) {
	t.Parallel()

	sched := NewTimerScheduler(20, nil)
	var fired atomic.Bool
	cancel := sched.RequestFrame(func(time.Time) { fired.Store(true) })
	cancel()
	cancel()

	time.Sleep(3 * sched.Interval())
	require.False(t, fired.Load())
}

func TestManualSchedulerFiresInOrderOnce(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler()
	var order []int
	sched.RequestFrame(func(time.Time) { order = append(order, 1) })
	cancel := sched.RequestFrame(func(time.Time) { order = append(order, 2) })
	sched.RequestFrame(func(time.Time) { order = append(order, 3) })
	cancel()

	require.Equal(t, 2, sched.Pending())
	require.Equal(t, 2, sched.Fire(epoch))
	require.Equal(t, []int{1, 3}, order)
	require.Zero(t, sched.Fire(epoch))
}

func TestManualSchedulerDefersNestedRequests(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler()
	runs := 0
	var loop FrameFunc
	loop = func(time.Time) {
		runs++
		sched.RequestFrame(loop)
	}
	sched.RequestFrame(loop)

	sched.Fire(epoch)
	sched.Fire(epoch)
	require.Equal(t, 2, runs)
	require.Equal(t, 1, sched.Pending())
}

func TestManualClock(t *testing.T) {
	t.Parallel()

	c := NewManualClock(epoch)
	require.Equal(t, epoch, c.Now())
	require.Equal(t, epoch.Add(time.Second), c.Advance(time.Second))
	c.Set(epoch)
	require.Equal(t, epoch, c.Now())
}
