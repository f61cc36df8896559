//go:build darwin

package memload

import (
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// detectTotalMemoryKB invokes sysctl for hw.memsize (bytes) and converts
// the last whitespace-delimited token to KiB.
func detectTotalMemoryKB() (uint64, error) {
	out, err := exec.Command("sysctl", "hw.memsize").Output()
	if err != nil {
		return 0, err
	}
	return parseSysctlMemsize(string(out))
}

func parseSysctlMemsize(out string) (uint64, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, errors.New("empty sysctl output")
	}
	bytes, err := strconv.ParseUint(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0, err
	}
	return bytes / 1024, nil
}
