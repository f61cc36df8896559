// Command synthload synthesizes controllable load on CPU, memory and disk
// I/O subsystems for benchmarking and capacity testing. The generators run
// concurrently and independently; the process waits for all of them before
// exiting.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/synthload/synthload/internal/config"
	"github.com/synthload/synthload/internal/console"
	"github.com/synthload/synthload/internal/cpuload"
	"github.com/synthload/synthload/internal/diskload"
	"github.com/synthload/synthload/internal/memload"
)

const version = "synthload v0.1.0"

func main() {
	cfg := config.Parse(os.Args[1:])

	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}
	if cfg.ShowHelp {
		printUsage()
		return
	}
	if err := cfg.Validate(); err != nil {
		_, _ = console.Red.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	console.PrintBanner()
	console.PrintConfig(cfg)

	collector := console.NewResultCollector()
	g, ctx := errgroup.WithContext(context.Background())

	if cfg.CPUPercent > 0 {
		g.Go(func() error {
			return cpuload.Run(ctx, cfg.CPUPercent, cfg.Duration)
		})
	}

	if cfg.MemoryPercent > 0 {
		g.Go(func() error {
			return memload.Run(ctx, cfg.MemoryPercent, cfg.Duration)
		})
	}

	if cfg.IOEnabled {
		opts := diskload.Options{
			FileSizeMB: cfg.IOSizeMB,
			ChunkKB:    cfg.ChunkKB,
			Duration:   cfg.IODuration,
			Random:     cfg.IORandom,
			Read:       cfg.IORead,
			Write:      cfg.IOWrite,
			Fsync:      cfg.IOFsync,
			RateOps:    cfg.IORateOps,
		}
		g.Go(func() error {
			return diskload.Run(ctx, cfg.IOPaths, cfg.IOWorkers, opts, collector.Report)
		})
	}

	if d := runLength(cfg); d > 0 {
		g.Go(func() error {
			console.TrackProgress(ctx, d)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_, _ = console.Red.Fprintf(os.Stderr, "load generation failed: %v\n", err)
		os.Exit(1)
	}

	collector.PrintTable()
	fmt.Println("Done")
}

// runLength is the longest duration of any enabled generator, used to size
// the progress bar. Zero when nothing is enabled.
func runLength(cfg config.Config) time.Duration {
	var d time.Duration
	if cfg.CPUPercent > 0 || cfg.MemoryPercent > 0 {
		d = cfg.Duration
	}
	if cfg.IOEnabled && cfg.IODuration > d {
		d = cfg.IODuration
	}
	return d
}

func printUsage() {
	fmt.Printf(`%s - synthesizes CPU, memory and disk I/O load

Usage:
  synthload [OPTIONS]

General Options:
  --cpu-percent <N>       CPU duty cycle per thread (0-100)
  --memory-percent <N>    Percent of total RAM to allocate
  --duration <SECS>       Duration for CPU and memory load (default 30)

Disk I/O Options:
  --io                    Enable the disk I/O worker pool
  --io-paths <DIR1,...>   Comma-separated target directories (default /tmp)
  --io-workers <N>        Workers per path (default 2)
  --io-size <MB>          Scratch file size per worker (default 100)
  --io-duration <SECS>    Duration of the I/O run (default 30)
  --io-read               Enable reads
  --io-write              Enable writes
  --io-random             Random instead of sequential offsets
  --io-rate <OPS>         Cap operations per second per worker
  --io-fsync              fsync after every write
  --chunk-size <KB>       Buffer size per operation (default 64)

Help:
  -h, --help              Show this help message
  -v, --version           Print the version string
`, version)
}
