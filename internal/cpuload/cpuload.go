// Package cpuload approximates a target per-core utilization by driving one
// worker per logical CPU through a fixed 100ms busy/idle square wave. The
// produced load is a coarse duty cycle, not calibrated saturation.
package cpuload

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

// period is the length of one busy+idle cycle.
const period = 100 * time.Millisecond

var bold = color.New(color.Bold)

// spinSink absorbs the busy-loop writes so the spin cannot be elided.
var spinSink atomic.Uint64

// dutyWindows splits one period into its busy and idle parts for the given
// target percent. Percent at or above 100 leaves no idle time; zero or
// negative percent leaves no busy time.
func dutyWindows(percent int) (busy, idle time.Duration) {
	switch {
	case percent <= 0:
		return 0, period
	case percent >= 100:
		return period, 0
	default:
		busy = time.Duration(percent) * time.Millisecond
		return busy, period - busy
	}
}

// Run spins one worker per logical CPU until d has elapsed. Each worker is
// locked to an OS thread and best-effort pinned to its core, then alternates
// spinning for the busy window and sleeping for the idle window. The only
// early exit is cancellation of ctx, checked once per cycle.
func Run(ctx context.Context, percent int, d time.Duration) error {
	workers := runtime.NumCPU()
	busy, idle := dutyWindows(percent)

	_, _ = bold.Printf("CPU: %d threads @ %d%%\n", workers, percent)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			unpin := pinWorker(i)
			defer unpin()
			return worker(ctx, busy, idle, d)
		})
	}
	return g.Wait()
}

func worker(ctx context.Context, busy, idle, d time.Duration) error {
	start := time.Now()
	for time.Since(start) < d {
		if err := ctx.Err(); err != nil {
			return err
		}
		if busy > 0 {
			spinFor(busy)
		}
		if idle > 0 {
			time.Sleep(idle)
		}
	}
	return nil
}

// spinFor burns CPU for roughly w by hammering a shared counter. The atomic
// write keeps the loop observable to the compiler.
func spinFor(w time.Duration) {
	t0 := time.Now()
	for time.Since(t0) < w {
		spinSink.Add(1)
	}
}
