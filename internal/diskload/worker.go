// Package diskload exercises disk subsystems with a pool of independent
// scratch-file workers. Each worker owns its own file handle, buffer and
// pseudo-random stream; there is no shared state between workers.
package diskload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

// Options carries the per-worker tunables. It is copied by value into every
// worker; nothing mutates it after construction.
type Options struct {
	FileSizeMB int
	ChunkKB    int
	Duration   time.Duration
	Random     bool
	Read       bool
	Write      bool
	Fsync      bool // sync after every write
	RateOps    int  // max operations/sec per worker, 0 = unlimited
}

// Worker names one scratch-file exerciser. The (path, index) pair is unique
// across the pool and determines both the file name and the PRNG seed.
type Worker struct {
	Path  string
	Index int
}

// Result is what a worker reports when its run completes.
type Result struct {
	Path    string
	Index   int
	MBps    float64
	Ops     uint64
	Bytes   uint64
	Mode    string
	Elapsed time.Duration
}

func (w Worker) filename() string {
	return filepath.Join(w.Path, fmt.Sprintf("worker_%d.tmp", w.Index))
}

// seqOffset is the sequential-mode offset for the n-th operation: it
// advances one chunk per op and wraps at span rather than growing the file.
func seqOffset(ops, chunk, span uint64) uint64 {
	return ops * chunk % span
}

// Run creates the worker's scratch file, sizes it, then performs read/write
// operations at sequential or pseudo-random offsets until the configured
// duration elapses or ctx is cancelled. It reports measured throughput and
// removes the file (best-effort) on the way out. Any file-system error is
// fatal to the worker and returned.
func (w Worker) Run(ctx context.Context, opts Options) (Result, error) {
	chunk := uint64(opts.ChunkKB) * 1024
	total := uint64(opts.FileSizeMB) * 1024 * 1024
	if chunk == 0 || total <= chunk {
		return Result{}, fmt.Errorf("chunk size %d must be smaller than file size %d", chunk, total)
	}
	span := total - chunk

	name := w.filename()
	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer os.Remove(name) // best-effort cleanup
	defer f.Close()

	if err := f.Truncate(int64(total)); err != nil {
		return Result{}, fmt.Errorf("resize %s to %d bytes: %w", name, total, err)
	}

	var limiter *rate.Limiter
	if opts.RateOps > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateOps), 1)
	}

	buf := make([]byte, chunk)
	prng := newLCG(uint64(w.Index))

	var ops, bytes uint64
	start := time.Now()
	for time.Since(start) < opts.Duration {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return Result{}, err
			}
		}

		var offset uint64
		if opts.Random {
			offset = prng.next() % span
		} else {
			offset = seqOffset(ops, chunk, span)
		}

		if opts.Write {
			prng.fill(buf)
			if _, err := f.WriteAt(buf, int64(offset)); err != nil {
				return Result{}, fmt.Errorf("write %s at offset %d: %w", name, offset, err)
			}
			if opts.Fsync {
				if err := f.Sync(); err != nil {
					return Result{}, fmt.Errorf("sync %s: %w", name, err)
				}
			}
		}

		if opts.Read {
			// Read contents are not verified; this is a throughput
			// exerciser, not a correctness check.
			if _, err := f.ReadAt(buf, int64(offset)); err != nil {
				return Result{}, fmt.Errorf("read %s at offset %d: %w", name, offset, err)
			}
		}

		ops++
		bytes += chunk
	}

	elapsed := time.Since(start)
	return Result{
		Path:    w.Path,
		Index:   w.Index,
		MBps:    float64(bytes) / elapsed.Seconds() / (1024 * 1024),
		Ops:     ops,
		Bytes:   bytes,
		Mode:    modeString(opts),
		Elapsed: elapsed,
	}, nil
}

// modeString is W for writes, R for reads, WR for both, empty when the
// worker only does offset bookkeeping.
func modeString(opts Options) string {
	m := ""
	if opts.Write {
		m += "W"
	}
	if opts.Read {
		m += "R"
	}
	return m
}
