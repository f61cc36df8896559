// Package config turns a raw argument list into an immutable snapshot of
// every tunable parameter. Parsing never fails: malformed numeric values
// silently fall back to the flag's default, unrecognized flags are ignored,
// and the last occurrence of a repeated flag wins. Validation of
// combinations that cannot run is a separate, explicit step.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults for every flag. Kept in one place so the parser stays a pure
// lookup over this policy table.
const (
	DefaultCPUPercent    = 0
	DefaultMemoryPercent = 0
	DefaultDurationSecs  = 30
	DefaultIOWorkers     = 2
	DefaultIOSizeMB      = 100
	DefaultIODurSecs     = 30
	DefaultChunkKB       = 64
	DefaultIORateOps     = 0
)

// DefaultIOPath is the target directory used when --io-paths is absent.
const DefaultIOPath = "/tmp"

// Config is the immutable snapshot of all tunable parameters. It is built
// once at startup and then copied by value to each generator; nothing
// mutates it after Parse returns.
type Config struct {
	CPUPercent    int
	MemoryPercent int
	Duration      time.Duration

	IOEnabled  bool
	IOPaths    []string
	IOWorkers  int
	IOSizeMB   int
	IODuration time.Duration
	IORandom   bool
	IORead     bool
	IOWrite    bool
	ChunkKB    int
	IORateOps  int
	IOFsync    bool

	ShowHelp    bool
	ShowVersion bool
}

// Parse maps an argument list (without the program name) to a Config.
// It is a pure function: no I/O, no process exit, no globals.
//
// An empty argument list behaves as --help. --version takes precedence
// over --help when both are present.
func Parse(args []string) Config {
	cfg := Config{
		CPUPercent:    DefaultCPUPercent,
		MemoryPercent: DefaultMemoryPercent,
		Duration:      DefaultDurationSecs * time.Second,
		IOPaths:       []string{DefaultIOPath},
		IOWorkers:     DefaultIOWorkers,
		IOSizeMB:      DefaultIOSizeMB,
		IODuration:    DefaultIODurSecs * time.Second,
		ChunkKB:       DefaultChunkKB,
		IORateOps:     DefaultIORateOps,
	}

	for _, a := range args {
		if a == "--version" || a == "-v" {
			cfg.ShowVersion = true
			return cfg
		}
	}

	if len(args) == 0 {
		cfg.ShowHelp = true
		return cfg
	}
	for _, a := range args {
		if a == "--help" || a == "-h" {
			cfg.ShowHelp = true
			return cfg
		}
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--cpu-percent":
			i++
			cfg.CPUPercent = intOr(valueAt(args, i), DefaultCPUPercent)
		case "--memory-percent":
			i++
			cfg.MemoryPercent = intOr(valueAt(args, i), DefaultMemoryPercent)
		case "--duration":
			i++
			cfg.Duration = secondsOr(valueAt(args, i), DefaultDurationSecs)
		case "--io":
			cfg.IOEnabled = true
		case "--io-paths":
			i++
			cfg.IOPaths = pathsOr(valueAt(args, i))
		case "--io-workers":
			i++
			cfg.IOWorkers = intOr(valueAt(args, i), DefaultIOWorkers)
		case "--io-size":
			i++
			cfg.IOSizeMB = intOr(valueAt(args, i), DefaultIOSizeMB)
		case "--io-duration":
			i++
			cfg.IODuration = secondsOr(valueAt(args, i), DefaultIODurSecs)
		case "--io-random":
			cfg.IORandom = true
		case "--io-read":
			cfg.IORead = true
		case "--io-write":
			cfg.IOWrite = true
		case "--chunk-size":
			i++
			cfg.ChunkKB = intOr(valueAt(args, i), DefaultChunkKB)
		case "--io-rate":
			i++
			cfg.IORateOps = intOr(valueAt(args, i), DefaultIORateOps)
		case "--io-fsync":
			cfg.IOFsync = true
		default:
			// Unrecognized flags are ignored silently.
		}
	}

	return cfg
}

// Validate rejects combinations that cannot run. Disk offsets are drawn
// from [0, file_size - chunk_size), so a chunk at least as large as the
// file would leave an empty (or negative) range. Rejecting this here is a
// deliberate deviation from the crash the arithmetic would otherwise
// produce.
func (c Config) Validate() error {
	if !c.IOEnabled {
		return nil
	}

	if c.IOWorkers < 1 {
		return fmt.Errorf("--io-workers must be at least 1, got %d", c.IOWorkers)
	}
	if len(c.IOPaths) == 0 {
		return fmt.Errorf("--io-paths must name at least one directory")
	}

	fileBytes := int64(c.IOSizeMB) * 1024 * 1024
	chunkBytes := int64(c.ChunkKB) * 1024
	if chunkBytes <= 0 {
		return fmt.Errorf("--chunk-size must be positive, got %d KB", c.ChunkKB)
	}
	if chunkBytes >= fileBytes {
		return fmt.Errorf("--chunk-size (%d KB) must be smaller than --io-size (%d MB)",
			c.ChunkKB, c.IOSizeMB)
	}

	return nil
}

// valueAt returns args[i] or "" when i is past the end, so a value flag at
// the tail of the argument list falls back to its default.
func valueAt(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

func intOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func secondsOr(s string, defSecs int) time.Duration {
	return time.Duration(intOr(s, defSecs)) * time.Second
}

func pathsOr(s string) []string {
	if s == "" {
		return []string{DefaultIOPath}
	}
	parts := strings.Split(s, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	if len(paths) == 0 {
		return []string{DefaultIOPath}
	}
	return paths
}
