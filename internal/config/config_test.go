package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ToastDurationMs != 3000 {
		t.Errorf("ToastDurationMs = %d, want 3000", cfg.ToastDurationMs)
	}
	if cfg.ToastDuration() != 3*time.Second {
		t.Errorf("ToastDuration() = %v, want 3s", cfg.ToastDuration())
	}
	if cfg.SeedDemoData {
		t.Error("SeedDemoData = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ToastDurationMs != 3000 {
		t.Errorf("ToastDurationMs = %d, want default 3000", cfg.ToastDurationMs)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"toast_duration_ms": 1500, "seed_demo_data": true, "disabled_tools": ["panas_submit"]}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ToastDurationMs != 1500 {
		t.Errorf("ToastDurationMs = %d, want 1500", cfg.ToastDurationMs)
	}
	if !cfg.SeedDemoData {
		t.Error("SeedDemoData = false, want true")
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "panas_submit" {
		t.Errorf("DisabledTools = %v, want [panas_submit]", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}

func TestMerge(t *testing.T) {
	base := &Config{
		ToastDurationMs: 3000,
		DisabledTools:   []string{"mood_delete"},
	}
	overlay := &Config{
		ToastDurationMs: 500,
		SeedDemoData:    true,
		DisabledTools:   []string{"mood_delete", "note_delete"},
	}

	merged := Merge(base, overlay)

	if merged.ToastDurationMs != 500 {
		t.Errorf("ToastDurationMs = %d, want overlay 500", merged.ToastDurationMs)
	}
	if !merged.SeedDemoData {
		t.Error("SeedDemoData = false, want true")
	}
	if len(merged.DisabledTools) != 2 {
		t.Errorf("DisabledTools = %v, want deduplicated pair", merged.DisabledTools)
	}
}

func TestMerge_ZeroOverlayKeepsBase(t *testing.T) {
	merged := Merge(DefaultConfig(), &Config{})

	if merged.ToastDurationMs != 3000 {
		t.Errorf("ToastDurationMs = %d, want base 3000", merged.ToastDurationMs)
	}
}
