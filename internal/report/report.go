// Package report prints a per-column table of compressed and uncompressed
// sizes, summed over every row group and file of a run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

// ColumnSummary holds the totals of one column path.
type ColumnSummary struct {
	Path         string
	Chunks       int
	Compressed   uint64
	Uncompressed uint64
}

// Ratio returns compressed / uncompressed, or 0 when nothing was stored.
func (c ColumnSummary) Ratio() float64 {
	if c.Uncompressed == 0 {
		return 0
	}
	return float64(c.Compressed) / float64(c.Uncompressed)
}

// Summary accumulates column totals across files.
type Summary struct {
	columns   map[string]*ColumnSummary
	files     int
	rowGroups int
	rows      int64
	total     uint64
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{columns: make(map[string]*ColumnSummary)}
}

// AddFile adds every column chunk of md.
func (s *Summary) AddFile(md profile.FileMetadata) {
	s.files++
	s.rowGroups += len(md.RowGroups)
	s.rows += md.NumRows

	for _, rg := range md.RowGroups {
		for _, col := range rg.Columns {
			key := strings.Join(col.Path, profile.FieldPathSeparator)
			c, ok := s.columns[key]
			if !ok {
				c = &ColumnSummary{Path: key}
				s.columns[key] = c
			}
			c.Chunks++
			c.Compressed += col.CompressedSize
			c.Uncompressed += col.UncompressedSize
			s.total += col.CompressedSize
		}
	}
}

// Columns returns the column totals, largest compressed size first.
func (s *Summary) Columns() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(s.columns))
	for _, c := range s.columns {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Compressed != out[j].Compressed {
			return out[i].Compressed > out[j].Compressed
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Total returns the compressed size of all column chunks.
func (s *Summary) Total() uint64 {
	return s.total
}

// Write renders the summary as a table.
func (s *Summary) Write(w io.Writer) {
	fmt.Fprintf(w, "Files: %d, Row groups: %d, Rows: %s, Compressed: %s\n",
		s.files, s.rowGroups, humanize.Comma(s.rows), humanize.IBytes(s.total))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column", "Chunks", "Compressed", "Uncompressed", "Ratio", "%"})

	for _, c := range s.Columns() {
		share := 0.0
		if s.total > 0 {
			share = float64(c.Compressed) / float64(s.total) * 100
		}
		table.Append([]string{
			c.Path,
			strconv.Itoa(c.Chunks),
			humanize.IBytes(c.Compressed),
			humanize.IBytes(c.Uncompressed),
			fmt.Sprintf("%.2f", c.Ratio()),
			fmt.Sprintf("%.2f", share),
		})
	}

	table.Render()
}
