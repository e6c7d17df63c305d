package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

func sortColumns() profile.FileMetadata {
	rg := profile.RowGroup{
		NumRows: 10,
		Columns: []profile.ColumnEntry{
			{Path: []string{"a"}, CompressedSize: 104, UncompressedSize: 208},
			{Path: []string{"b"}, CompressedSize: 70, UncompressedSize: 70},
		},
	}
	return profile.FileMetadata{NumRows: 20, RowGroups: []profile.RowGroup{rg, rg}}
}

func TestSummaryColumns(t *testing.T) {
	s := NewSummary()
	s.AddFile(sortColumns())

	want := []ColumnSummary{
		{Path: "a", Chunks: 2, Compressed: 208, Uncompressed: 416},
		{Path: "b", Chunks: 2, Compressed: 140, Uncompressed: 140},
	}
	if diff := cmp.Diff(want, s.Columns()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if s.Total() != 348 {
		t.Errorf("expected total 348, got %d", s.Total())
	}
	if r := s.Columns()[0].Ratio(); r != 0.5 {
		t.Errorf("expected ratio 0.5, got %f", r)
	}
}

func TestSummaryNestedPathsAcrossFiles(t *testing.T) {
	md := profile.FileMetadata{RowGroups: []profile.RowGroup{{
		Columns: []profile.ColumnEntry{{Path: []string{"a", "key_value", "key"}, CompressedSize: 69}},
	}}}

	s := NewSummary()
	s.AddFile(md)
	s.AddFile(md)

	cols := s.Columns()
	if len(cols) != 1 || cols[0].Path != "a.key_value.key" || cols[0].Compressed != 138 {
		t.Errorf("unexpected columns %+v", cols)
	}
	if cols[0].Ratio() != 0 {
		t.Error("ratio without uncompressed size should be 0")
	}
}

func TestSummaryWrite(t *testing.T) {
	s := NewSummary()
	s.AddFile(sortColumns())

	var buf bytes.Buffer
	s.Write(&buf)
	out := buf.String()

	for _, want := range []string{"Files: 1", "Row groups: 2", "COLUMN", "208 B", "59.77"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, " a ") > strings.Index(out, " b ") {
		t.Error("largest column should be listed first")
	}
}
