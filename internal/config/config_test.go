package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestDefaultPathsConfig(t *testing.T) {
	cfg := Default()

	paths := []struct {
		name string
		got  string
		want string
	}{
		{"State", cfg.Paths.State, ".calc/state.bin"},
		{"Audit", cfg.Paths.Audit, ".calc/audit.jsonl"},
		{"Log", cfg.Paths.Log, ".calc/calc.log"},
	}

	for _, tc := range paths {
		if tc.got != tc.want {
			t.Errorf("Paths.%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestDefaultStorageConfig(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "file")
	}
}

func TestDefaultLogRotationConfig(t *testing.T) {
	cfg := Default()

	if cfg.LogRotation.MaxSizeMB != 10 {
		t.Errorf("LogRotation.MaxSizeMB = %d, want %d", cfg.LogRotation.MaxSizeMB, 10)
	}
	if cfg.LogRotation.MaxBackups != 3 {
		t.Errorf("LogRotation.MaxBackups = %d, want %d", cfg.LogRotation.MaxBackups, 3)
	}
	if cfg.LogRotation.MaxAgeDays != 7 {
		t.Errorf("LogRotation.MaxAgeDays = %d, want %d", cfg.LogRotation.MaxAgeDays, 7)
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
}

func TestDefaultAuditConfig(t *testing.T) {
	cfg := Default()

	if !cfg.Audit.Enabled {
		t.Error("Audit.Enabled = false, want true")
	}
}

func TestDefaultTUIConfig(t *testing.T) {
	cfg := Default()

	if cfg.TUI.Enabled {
		t.Error("TUI.Enabled = true, want false")
	}
	if cfg.TUI.RefreshEvery != 200*time.Millisecond {
		t.Errorf("TUI.RefreshEvery = %v, want %v", cfg.TUI.RefreshEvery, 200*time.Millisecond)
	}
}

func TestDefaultServeConfig(t *testing.T) {
	cfg := Default()

	if cfg.Serve.Addr != "127.0.0.1:4420" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, "127.0.0.1:4420")
	}
}
