package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Unit != "b" || cfg.Format != "svg" {
		t.Errorf("unexpected defaults unit=%q format=%q", cfg.Unit, cfg.Format)
	}
	if !cfg.Flamegraph.Hash {
		t.Error("hash should default to true")
	}
	if cfg.Flamegraph.Width != 1200 {
		t.Errorf("expected width 1200, got %d", cfg.Flamegraph.Width)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DATA_DIR", "/data")
	path := writeConfig(t, `
input_path: ${DATA_DIR}/tables
unit: kb
format: folded
summary: true
flamegraph:
  palette: mem
  width: 1600
  hash: false
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InputPath != "/data/tables" {
		t.Errorf("expected expanded input path, got %q", cfg.InputPath)
	}
	if cfg.UnitValue() != profile.KiloBytes {
		t.Errorf("expected kb, got %v", cfg.UnitValue())
	}
	if cfg.Format != "folded" || !cfg.Summary {
		t.Errorf("unexpected format=%q summary=%v", cfg.Format, cfg.Summary)
	}
	if cfg.Flamegraph.Palette != "mem" || cfg.Flamegraph.Width != 1600 || cfg.Flamegraph.Hash {
		t.Errorf("unexpected flamegraph section %+v", cfg.Flamegraph)
	}
	// Untouched keys keep their defaults.
	if cfg.Flamegraph.FrameHeight != 16 {
		t.Errorf("expected default frame height, got %d", cfg.Flamegraph.FrameHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "input_path: a.parquet\nunit: kb\n")
	t.Setenv("PARQUET_FLAMEGRAPH_UNIT", "gb")
	t.Setenv("PARQUET_FLAMEGRAPH_WIDTH", "800")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Unit != "gb" {
		t.Errorf("env should override file, got unit %q", cfg.Unit)
	}
	if cfg.Flamegraph.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Flamegraph.Width)
	}
	if cfg.InputPath != "a.parquet" {
		t.Errorf("unset env must not clear file values, got %q", cfg.InputPath)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.IsIO(err) {
		t.Errorf("expected i/o error for missing file, got %v", err)
	}

	path := writeConfig(t, "unknown_key: 1\n")
	if _, err := Load(path); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown key, got %v", err)
	}

	empty := writeConfig(t, "")
	if _, err := Load(empty); err != nil {
		t.Errorf("empty file should load defaults: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Unit = "tb"
	cfg.Format = "png"
	cfg.Export.Compression = "brotli"
	cfg.Log.Level = "loud"
	cfg.Flamegraph.Palette = "rainbow"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var v *errors.ValidationErrors
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(v.Errors) != 6 {
		t.Errorf("expected 6 errors, got %d: %v", len(v.Errors), err)
	}

	for _, sentinel := range []error{
		errors.ErrMissingField, errors.ErrInvalidUnit, errors.ErrInvalidFormat, errors.ErrInvalidPalette,
	} {
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %v to be reachable", sentinel)
		}
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Flamegraph.Title = "custom"
	cfg.Flamegraph.Inverted = true

	opts := cfg.Renderer()
	if opts.Title != "custom" || !opts.Inverted || !opts.Hash {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.ImageWidth != cfg.Flamegraph.Width {
		t.Errorf("width not carried over")
	}
}

func TestEnvDescription(t *testing.T) {
	desc := EnvDescription()
	if !strings.Contains(desc, "PARQUET_FLAMEGRAPH_UNIT") {
		t.Errorf("description should list env vars:\n%s", desc)
	}
}
