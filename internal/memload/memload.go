// Package memload allocates a percentage of total physical memory in 1 MiB
// blocks, holds the allocation live for a duration, and releases it when it
// returns. Total memory comes from a platform-specific probe with a fixed
// 1 GiB fallback.
package memload

import (
	"context"
	"runtime"
	"time"

	"github.com/fatih/color"
)

const (
	blockSize = 1 << 20 // one allocation unit
	pageSize  = 4096
)

var bold = color.New(color.Bold)

// targetKB computes the allocation target for a percentage of total memory.
func targetKB(totalKB uint64, percent int) uint64 {
	return totalKB * uint64(percent) / 100
}

// blockCount returns how many blocks cover target KiB, rounding up, so the
// allocation meets the target and overshoots by less than one block.
func blockCount(targetKB uint64) int {
	return int((targetKB + blockSize/1024 - 1) / (blockSize / 1024))
}

// Run allocates percent% of total physical memory and holds it for d (or
// until ctx is cancelled). Every page of every block is written explicitly
// so the pressure is physical rather than lazily-mapped zero pages. An
// allocation failure is a runtime throw that aborts the process; there is
// no retry and no graceful degradation.
func Run(ctx context.Context, percent int, d time.Duration) error {
	total := TotalMemoryKB()
	target := targetKB(total, percent)

	_, _ = bold.Printf("Memory: Allocating ~%d MB\n", target/1024)

	n := blockCount(target)
	blocks := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, touchedBlock())
	}

	select {
	case <-time.After(d):
	case <-ctx.Done():
	}

	// Keep the blocks reachable for the full hold; released on return.
	runtime.KeepAlive(blocks)
	return ctx.Err()
}

// touchedBlock allocates one block and writes to every page, so the
// allocator cannot satisfy it with shared zero pages.
func touchedBlock() []byte {
	b := make([]byte, blockSize)
	for off := 0; off < blockSize; off += pageSize {
		b[off] = 1
	}
	return b
}
