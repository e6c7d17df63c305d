// Package profile turns the column-chunk metadata of a Parquet footer into
// flame graph stack lines.
//
// The types here are a minimal structural view of the footer: ordered row
// groups of ordered (path, size) pairs. They carry no dependency on the
// parquet reader, which fills them in.
package profile

import (
	"strconv"
	"strings"
)

const (
	// FieldPathSeparator joins nested field names in Parquet column paths.
	FieldPathSeparator = "."

	// HierarchySeparator delimits frames in the folded stack protocol.
	HierarchySeparator = ";"
)

// ColumnEntry is one column chunk of a row group.
type ColumnEntry struct {
	// Path holds the field names from the schema root to the leaf.
	Path []string

	// CompressedSize is the total compressed size of the chunk in bytes.
	CompressedSize uint64

	// UncompressedSize is the total uncompressed size of the chunk in bytes.
	UncompressedSize uint64

	// Codec names the compression codec of the chunk.
	Codec string
}

// RowGroup is an ordered list of column chunks, in declaration order.
type RowGroup struct {
	Columns []ColumnEntry
	NumRows int64
}

// FileMetadata is the ordered list of row groups of one file, in physical order.
type FileMetadata struct {
	RowGroups []RowGroup
	NumRows   int64
	CreatedBy string
}

// NumColumnChunks returns the total number of column chunks across row groups.
func (m *FileMetadata) NumColumnChunks() int {
	n := 0
	for i := range m.RowGroups {
		n += len(m.RowGroups[i].Columns)
	}
	return n
}

// StackLine is one record of the folded stack protocol.
type StackLine struct {
	Path  string
	Value uint64
}

// String renders the line as "<path> <value>".
func (l StackLine) String() string {
	return l.Path + " " + strconv.FormatUint(l.Value, 10)
}

// Build converts file metadata into stack lines, one per column chunk.
//
// Lines come out in row group order, then column order. Columns sharing a
// path in different row groups stay separate lines; summing them is left to
// the renderer. Values are the compressed size divided by the unit divisor,
// truncated toward zero.
func Build(md FileMetadata, unit Unit) []StackLine {
	divisor := unit.Divisor()

	lines := make([]StackLine, 0, md.NumColumnChunks())
	for _, rg := range md.RowGroups {
		for _, col := range rg.Columns {
			lines = append(lines, StackLine{
				Path:  StackPath(col.Path),
				Value: col.CompressedSize / divisor,
			})
		}
	}
	return lines
}

// StackPath converts a column path into a folded stack path.
//
// Dots inside a field name are not escaped: they become hierarchy levels,
// the same as the dots joining the segments.
func StackPath(segments []string) string {
	joined := strings.Join(segments, FieldPathSeparator)
	return strings.ReplaceAll(joined, FieldPathSeparator, HierarchySeparator)
}

// Lines renders stack lines to their text records.
func Lines(lines []StackLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}
