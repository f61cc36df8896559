//go:build windows

package memload

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// detectTotalMemoryKB reads TotalPhys from GlobalMemoryStatusEx.
func detectTotalMemoryKB() (uint64, error) {
	var status windows.MemoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return 0, err
	}
	return status.TotalPhys / 1024, nil
}
