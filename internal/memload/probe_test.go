package memload

import "testing"

func TestTotalMemoryKB_Positive(t *testing.T) {
	kb := TotalMemoryKB()
	if kb == 0 {
		t.Fatal("total memory must be positive")
	}
	// Any machine running this suite has well over 128 MB of RAM, so a
	// value at or below that means the probe fell back or misparsed.
	if kb <= 128_000 {
		t.Errorf("suspiciously low total memory: %d KiB", kb)
	}
}
