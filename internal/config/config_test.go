package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *cfg.Analysis.TopK != 3 {
		t.Errorf("TopK = %d; want 3", *cfg.Analysis.TopK)
	}
	if *cfg.Analysis.Sentinel != 9 {
		t.Errorf("Sentinel = %d; want 9", *cfg.Analysis.Sentinel)
	}
	if cfg.Analysis.Strict {
		t.Error("Strict = true; want false")
	}
}

func TestParse_Values(t *testing.T) {
	cfg, err := Parse([]byte("analysis:\n  top_k: 2\n  sentinel: 0\n  strict: true\nlogging:\n  verbosity: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *cfg.Analysis.TopK != 2 || *cfg.Analysis.Sentinel != 0 || !cfg.Analysis.Strict || cfg.Logging.Verbosity != 2 {
		t.Errorf("unexpected config: %+v (sentinel %d)", cfg, *cfg.Analysis.Sentinel)
	}
	if got := len(cfg.Options()); got != 3 {
		t.Errorf("Options() returned %d options; want 3", got)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError string
	}{
		{"negative top_k", "analysis:\n  top_k: -1\n", "top_k must be at least 1"},
		{"zero top_k", "analysis:\n  top_k: 0\n", "top_k must be at least 1"},
		{"sentinel too high", "analysis:\n  sentinel: 10\n", "sentinel must be within"},
		{"negative sentinel", "analysis:\n  sentinel: -2\n", "sentinel must be within"},
		{"negative verbosity", "logging:\n  verbosity: -1\n", "verbosity must not be negative"},
		{"bad yaml", "analysis: [", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Parse() error = %v; want containing %q", err, tt.wantError)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smokebasin.yaml")
	if err := os.WriteFile(path, []byte("analysis:\n  top_k: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg.Analysis.TopK != 4 {
		t.Errorf("TopK = %d; want 4", *cfg.Analysis.TopK)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}
