//go:build windows

package cpuload

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// pinWorker locks the calling goroutine to an OS thread and best-effort
// pins that thread to the given CPU. The returned func releases the thread.
func pinWorker(cpuID int) func() {
	runtime.LockOSThread()

	handle, _, _ := getCurrentThread.Call()
	mask := uintptr(1) << (cpuID % runtime.NumCPU())
	_, _, _ = setThreadAffinityMask.Call(handle, mask)

	return runtime.UnlockOSThread
}
