// Package console is the human-readable surface of the tool: the startup
// configuration dump, per-worker result lines, the final results table and
// the run progress bar.
package console

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/synthload/synthload/internal/config"
	"github.com/synthload/synthload/internal/diskload"
)

// Color helpers shared by the entrypoint and the generators' callers.
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
)

// PrintBanner prints the tool header.
func PrintBanner() {
	_, _ = Bold.Println("═══════════════════════════════════════════")
	_, _ = Bold.Println("  synthload — CPU / memory / disk I/O load")
	_, _ = Bold.Println("═══════════════════════════════════════════")
	fmt.Println()
}

// PrintConfig dumps the effective configuration as a table before any
// generator starts.
func PrintConfig(cfg config.Config) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Setting", "Value")

	_ = table.Append("CPU percent", strconv.Itoa(cfg.CPUPercent))
	_ = table.Append("Memory percent", strconv.Itoa(cfg.MemoryPercent))
	_ = table.Append("Duration", cfg.Duration.String())
	_ = table.Append("Disk I/O", onOff(cfg.IOEnabled))

	if cfg.IOEnabled {
		mode := "sequential"
		if cfg.IORandom {
			mode = "random"
		}
		_ = table.Append("I/O paths", fmt.Sprintf("%v", cfg.IOPaths))
		_ = table.Append("I/O workers per path", strconv.Itoa(cfg.IOWorkers))
		_ = table.Append("I/O file size", fmt.Sprintf("%d MB", cfg.IOSizeMB))
		_ = table.Append("I/O duration", cfg.IODuration.String())
		_ = table.Append("I/O offsets", mode)
		_ = table.Append("I/O reads", onOff(cfg.IORead))
		_ = table.Append("I/O writes", onOff(cfg.IOWrite))
		_ = table.Append("Chunk size", fmt.Sprintf("%d KB", cfg.ChunkKB))
		if cfg.IORateOps > 0 {
			_ = table.Append("I/O rate cap", fmt.Sprintf("%d ops/s", cfg.IORateOps))
		}
		_ = table.Append("Fsync per write", onOff(cfg.IOFsync))
	}

	_ = table.Render()
	fmt.Println()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// ResultCollector prints each disk worker's line as it finishes and keeps
// the results for the final table.
type ResultCollector struct {
	mu      sync.Mutex
	results []diskload.Result
}

func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// Report records one worker result and prints its throughput line. Safe for
// concurrent use.
func (rc *ResultCollector) Report(res diskload.Result) {
	rc.mu.Lock()
	rc.results = append(rc.results, res)
	rc.mu.Unlock()

	fmt.Printf("[I/O Worker %d] %.2f MB/s | %d ops | mode=%s\n",
		res.Index, res.MBps, res.Ops, res.Mode)
}

// PrintTable renders the per-worker summary. No-op when no worker reported.
func (rc *ResultCollector) PrintTable() {
	rc.mu.Lock()
	results := make([]diskload.Result, len(rc.results))
	copy(results, rc.results)
	rc.mu.Unlock()

	if len(results) == 0 {
		return
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}
		return results[i].Index < results[j].Index
	})

	fmt.Println()
	_, _ = Bold.Println("I/O results:")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Path", "Worker", "Mode", "MB/s", "Ops")
	for _, r := range results {
		mode := r.Mode
		if mode == "" {
			mode = "-"
		}
		_ = table.Append(r.Path, strconv.Itoa(r.Index), mode,
			fmt.Sprintf("%.2f", r.MBps), strconv.FormatUint(r.Ops, 10))
	}
	_ = table.Render()
}

// TrackProgress renders a progress bar over the whole run, advancing once
// per second until d elapses or ctx is cancelled. It writes to stderr and
// clears itself when done, so generator output stays clean.
func TrackProgress(ctx context.Context, d time.Duration) {
	secs := int(d / time.Second)
	if secs <= 0 {
		return
	}

	bar := progressbar.NewOptions(secs,
		progressbar.OptionSetDescription("Generating load"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for i := 0; i < secs; i++ {
		select {
		case <-ticker.C:
			_ = bar.Add(1)
		case <-ctx.Done():
			_ = bar.Finish()
			return
		}
	}
	_ = bar.Finish()
}
