package config

import (
	"reflect"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg := Parse([]string{"--io"})

	if cfg.CPUPercent != 0 || cfg.MemoryPercent != 0 {
		t.Errorf("expected zero cpu/memory percent, got %d/%d", cfg.CPUPercent, cfg.MemoryPercent)
	}
	if cfg.Duration != 30*time.Second {
		t.Errorf("expected default duration 30s, got %v", cfg.Duration)
	}
	if !reflect.DeepEqual(cfg.IOPaths, []string{"/tmp"}) {
		t.Errorf("expected default io paths [/tmp], got %v", cfg.IOPaths)
	}
	if cfg.IOWorkers != 2 || cfg.IOSizeMB != 100 || cfg.ChunkKB != 64 {
		t.Errorf("unexpected io defaults: workers=%d size=%d chunk=%d",
			cfg.IOWorkers, cfg.IOSizeMB, cfg.ChunkKB)
	}
	if cfg.IODuration != 30*time.Second {
		t.Errorf("expected default io duration 30s, got %v", cfg.IODuration)
	}
	if cfg.IORead || cfg.IOWrite || cfg.IORandom || cfg.IOFsync {
		t.Error("read/write/random/fsync should default to off")
	}
}

func TestParse_NoArgsBehavesAsHelp(t *testing.T) {
	cfg := Parse(nil)
	if !cfg.ShowHelp {
		t.Error("empty argument list should behave as --help")
	}
}

func TestParse_VersionWinsOverHelp(t *testing.T) {
	cfg := Parse([]string{"--help", "--version"})
	if !cfg.ShowVersion {
		t.Error("expected ShowVersion")
	}
	if cfg.ShowHelp {
		t.Error("--version should take precedence over --help")
	}
}

func TestParse_MalformedNumbersFallBackToDefaults(t *testing.T) {
	cfg := Parse([]string{
		"--cpu-percent", "banana",
		"--memory-percent", "12.5",
		"--duration", "",
		"--io-workers", "two",
		"--chunk-size", "64k",
	})

	if cfg.CPUPercent != 0 {
		t.Errorf("malformed --cpu-percent should default to 0, got %d", cfg.CPUPercent)
	}
	if cfg.MemoryPercent != 0 {
		t.Errorf("malformed --memory-percent should default to 0, got %d", cfg.MemoryPercent)
	}
	if cfg.Duration != 30*time.Second {
		t.Errorf("malformed --duration should default to 30s, got %v", cfg.Duration)
	}
	if cfg.IOWorkers != 2 {
		t.Errorf("malformed --io-workers should default to 2, got %d", cfg.IOWorkers)
	}
	if cfg.ChunkKB != 64 {
		t.Errorf("malformed --chunk-size should default to 64, got %d", cfg.ChunkKB)
	}
}

func TestParse_LastSeenWins(t *testing.T) {
	cfg := Parse([]string{"--cpu-percent", "10", "--cpu-percent", "80"})
	if cfg.CPUPercent != 80 {
		t.Errorf("expected last --cpu-percent to win, got %d", cfg.CPUPercent)
	}
}

func TestParse_UnrecognizedFlagsIgnored(t *testing.T) {
	cfg := Parse([]string{"--frobnicate", "--cpu-percent", "25", "--what=ever"})
	if cfg.CPUPercent != 25 {
		t.Errorf("unknown flags should be ignored, got cpu percent %d", cfg.CPUPercent)
	}
	if cfg.ShowHelp || cfg.ShowVersion {
		t.Error("unknown flags should not trigger help or version")
	}
}

func TestParse_ValueFlagAtEndOfArgs(t *testing.T) {
	cfg := Parse([]string{"--io", "--io-size"})
	if cfg.IOSizeMB != 100 {
		t.Errorf("dangling --io-size should keep default 100, got %d", cfg.IOSizeMB)
	}
}

func TestParse_IOPathsCommaList(t *testing.T) {
	cfg := Parse([]string{"--io-paths", "/mnt/a, /mnt/b ,/mnt/c"})
	want := []string{"/mnt/a", "/mnt/b", "/mnt/c"}
	if !reflect.DeepEqual(cfg.IOPaths, want) {
		t.Errorf("expected %v, got %v", want, cfg.IOPaths)
	}
}

func TestParse_IOFlags(t *testing.T) {
	cfg := Parse([]string{
		"--io", "--io-random", "--io-read", "--io-write", "--io-fsync",
		"--io-rate", "500", "--io-duration", "5", "--io-size", "10",
	})
	if !cfg.IOEnabled || !cfg.IORandom || !cfg.IORead || !cfg.IOWrite || !cfg.IOFsync {
		t.Error("boolean io flags not all set")
	}
	if cfg.IORateOps != 500 {
		t.Errorf("expected io rate 500, got %d", cfg.IORateOps)
	}
	if cfg.IODuration != 5*time.Second {
		t.Errorf("expected io duration 5s, got %v", cfg.IODuration)
	}
	if cfg.IOSizeMB != 10 {
		t.Errorf("expected io size 10, got %d", cfg.IOSizeMB)
	}
}

func TestValidate_ChunkMustBeSmallerThanFile(t *testing.T) {
	cfg := Parse([]string{"--io", "--io-size", "1", "--chunk-size", "1024"})
	if err := cfg.Validate(); err == nil {
		t.Error("chunk size equal to file size must be rejected")
	}

	cfg = Parse([]string{"--io", "--io-size", "1", "--chunk-size", "2048"})
	if err := cfg.Validate(); err == nil {
		t.Error("chunk size larger than file size must be rejected")
	}

	cfg = Parse([]string{"--io", "--io-size", "1", "--chunk-size", "4"})
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid configuration rejected: %v", err)
	}
}

func TestValidate_SkippedWhenIODisabled(t *testing.T) {
	// The degenerate numbers only matter once --io is set.
	cfg := Parse([]string{"--cpu-percent", "50", "--io-size", "1", "--chunk-size", "2048"})
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation should not apply without --io: %v", err)
	}
}

func TestValidate_Workers(t *testing.T) {
	cfg := Parse([]string{"--io", "--io-workers", "0"})
	if err := cfg.Validate(); err == nil {
		t.Error("zero workers must be rejected")
	}
}
