package errors

import (
	"fmt"
	"io/fs"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"no files", Wrapf(ErrNoParquetFiles, "under %s", "/tmp/x"), ExitInput},
		{"wrong extension", ErrNotParquetFile, ExitInput},
		{"output", Wrap(ErrOutputPath, "temp path"), ExitOutput},
		{"parse", fmt.Errorf("file a.parquet: %w", ErrMetadataParse), ExitParse},
		{"io", WrapIO(fs.ErrNotExist, "open", "a.parquet"), ExitUnavailable},
		{"unit", Wrap(ErrInvalidUnit, "tb"), ExitUsage},
		{"config", NewValidation("format", "unknown"), ExitUsage},
		{"other", fmt.Errorf("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %s, want %s", tt.err, ExitName(got), ExitName(tt.want))
			}
		})
	}
}

func TestWrapIOKeepsCause(t *testing.T) {
	err := WrapIO(fs.ErrPermission, "create", "/root/out.svg")

	if !IsIO(err) {
		t.Error("expected IsIO")
	}
	if !Is(err, fs.ErrPermission) {
		t.Error("expected original cause to be reachable")
	}
	if WrapIO(nil, "open", "x") != nil {
		t.Error("WrapIO(nil) should be nil")
	}
}

func TestValidationErrors(t *testing.T) {
	v := NewValidationErrors()
	if v.Err() != nil {
		t.Fatal("empty collector should return nil")
	}

	v.AddField("unit", "unknown unit tb")
	v.AddMissing("input_path")
	v.Add(nil)

	if len(v.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors))
	}

	err := v.Err()
	if !Is(err, ErrMissingField) {
		t.Error("expected ErrMissingField to be reachable")
	}
	if !Is(err, ErrInvalidConfig) {
		t.Error("expected ErrInvalidConfig to be reachable")
	}
	if ExitCode(err) != ExitUsage {
		t.Errorf("expected usage exit code, got %d", ExitCode(err))
	}
}
