//go:build darwin

package cpuload

import "runtime"

// pinWorker locks the goroutine to an OS thread. CPU pinning is not
// available on macOS.
func pinWorker(int) func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
