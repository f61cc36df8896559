package memload

import (
	"fmt"
	"os"
)

// fallbackTotalKB is reported when the platform strategy fails: 1 GiB.
const fallbackTotalKB = 1 << 20

// TotalMemoryKB reports total physical memory in KiB. Detection is
// best-effort and never fails outright: when the platform backend errors
// out, the fixed fallback is returned along with a stderr diagnostic.
func TotalMemoryKB() uint64 {
	kb, err := detectTotalMemoryKB()
	if err != nil || kb == 0 {
		fmt.Fprintf(os.Stderr, "unable to detect total memory, using fallback 1GB: %v\n", err)
		return fallbackTotalKB
	}
	return kb
}
