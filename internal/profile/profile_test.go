package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
)

func col(size uint64, path ...string) ColumnEntry {
	return ColumnEntry{Path: path, CompressedSize: size}
}

func TestBuildNestedPaths(t *testing.T) {
	md := FileMetadata{
		RowGroups: []RowGroup{{
			Columns: []ColumnEntry{
				col(69, "a", "key_value", "key"),
				col(95, "a", "key_value", "value", "key_value", "key"),
				col(50, "a", "key_value", "value", "key_value", "value"),
				col(56, "b"),
				col(68, "c"),
			},
		}},
	}

	got := Lines(Build(md, Bytes))
	want := []string{
		"a;key_value;key 69",
		"a;key_value;value;key_value;key 95",
		"a;key_value;value;key_value;value 50",
		"b 56",
		"c 68",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMultipleRowGroups(t *testing.T) {
	md := FileMetadata{
		RowGroups: []RowGroup{
			{Columns: []ColumnEntry{col(104, "a"), col(70, "b")}},
			{Columns: []ColumnEntry{col(104, "a"), col(70, "b")}},
		},
	}

	got := Build(md, Bytes)
	want := []StackLine{
		{Path: "a", Value: 104},
		{Path: "b", Value: 70},
		{Path: "a", Value: 104},
		{Path: "b", Value: 70},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("duplicate paths must not be merged (-want +got):\n%s", diff)
	}
}

func TestBuildLength(t *testing.T) {
	sizes := []int{3, 0, 5, 1}

	var md FileMetadata
	total := 0
	for _, n := range sizes {
		var rg RowGroup
		for i := 0; i < n; i++ {
			rg.Columns = append(rg.Columns, col(uint64(i), "c"))
		}
		md.RowGroups = append(md.RowGroups, rg)
		total += n
	}

	if got := len(Build(md, Bytes)); got != total {
		t.Errorf("expected %d lines, got %d", total, got)
	}
	if md.NumColumnChunks() != total {
		t.Errorf("NumColumnChunks: expected %d, got %d", total, md.NumColumnChunks())
	}
}

func TestBuildUnitTruncation(t *testing.T) {
	tests := []struct {
		size uint64
		unit Unit
		want uint64
	}{
		{2050, Bytes, 2050},
		{2050, KiloBytes, 2},
		{1023, KiloBytes, 0},
		{3 * 1024 * 1024, MegaBytes, 3},
		{3*1024*1024 - 1, MegaBytes, 2},
		{5 * 1024 * 1024 * 1024, GigaBytes, 5},
		{1024*1024*1024 - 1, GigaBytes, 0},
	}

	for _, tt := range tests {
		md := FileMetadata{RowGroups: []RowGroup{{Columns: []ColumnEntry{col(tt.size, "x")}}}}
		got := Build(md, tt.unit)
		if got[0].Value != tt.want {
			t.Errorf("size %d in %s: expected %d, got %d", tt.size, tt.unit.Label(), tt.want, got[0].Value)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(FileMetadata{}, Bytes)
	if got == nil {
		t.Fatal("expected empty, non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no lines, got %d", len(got))
	}

	got = Build(FileMetadata{RowGroups: []RowGroup{{}, {}}}, KiloBytes)
	if len(got) != 0 {
		t.Errorf("row groups without columns should yield no lines, got %d", len(got))
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	md := FileMetadata{
		RowGroups: []RowGroup{
			{Columns: []ColumnEntry{col(4096, "x", "y"), col(1, "z")}},
			{Columns: []ColumnEntry{col(9000, "x", "y")}},
		},
	}

	first := Lines(Build(md, KiloBytes))
	second := Lines(Build(md, KiloBytes))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated builds differ:\n%s", diff)
	}
}

func TestStackPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"a"}, "a"},
		{[]string{"a", "b", "c"}, "a;b;c"},
		{[]string{"a.b", "c"}, "a;b;c"},
		{[]string{"a..b"}, "a;;b"},
		{[]string{"already;split"}, "already;split"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := StackPath(tt.segments); got != tt.want {
			t.Errorf("StackPath(%q) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
		label string
	}{
		{"b", Bytes, "Bytes"},
		{"", Bytes, "Bytes"},
		{"KB", KiloBytes, "KB"},
		{"mb", MegaBytes, "MB"},
		{" gb ", GigaBytes, "GB"},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.input)
		if err != nil {
			t.Errorf("ParseUnit(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got.Label() != tt.label {
			t.Errorf("%v label = %q, want %q", got, got.Label(), tt.label)
		}
	}

	if _, err := ParseUnit("tb"); !errors.Is(err, errors.ErrInvalidUnit) {
		t.Errorf("expected ErrInvalidUnit, got %v", err)
	}

	for i, u := range Units {
		got, err := ParseUnit(u.String())
		if err != nil || got != u {
			t.Errorf("ParseUnit(%q) = %v, %v", u.String(), got, err)
		}
		if i > 0 && u.Divisor() != Units[i-1].Divisor()*1024 {
			t.Errorf("%v divisor %d is not 1024 times %v", u, u.Divisor(), Units[i-1])
		}
	}
}

func TestUnitFlagValue(t *testing.T) {
	var u Unit
	if err := u.Set("mb"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if u != MegaBytes || u.String() != "mb" {
		t.Errorf("expected mb, got %v", u)
	}
	if u.Type() != "unit" {
		t.Errorf("unexpected flag type %q", u.Type())
	}
	if err := u.Set("pb"); err == nil {
		t.Error("expected error for unknown unit")
	}
	if u != MegaBytes {
		t.Error("failed Set must not modify the unit")
	}
}
