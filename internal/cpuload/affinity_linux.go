//go:build linux

package cpuload

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinWorker locks the calling goroutine to an OS thread and best-effort
// pins that thread to the given CPU. The returned func releases the thread.
func pinWorker(cpuID int) func() {
	runtime.LockOSThread()

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpuID % runtime.NumCPU())
	_ = unix.SchedSetaffinity(0, &mask) // 0 = current thread

	return runtime.UnlockOSThread
}
