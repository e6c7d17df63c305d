package parquet

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

// Options configures the profile writer.
type Options struct {
	// Compression algorithm
	Compression CompressionType
}

// CompressionType represents a Parquet compression algorithm.
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionSnappy
	CompressionZstd
	CompressionLZ4
	CompressionGzip
)

// DefaultOptions returns default Parquet options.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionZstd,
	}
}

// ParseCompressionType parses a compression type string.
func ParseCompressionType(s string) CompressionType {
	switch s {
	case "snappy":
		return CompressionSnappy
	case "zstd":
		return CompressionZstd
	case "lz4":
		return CompressionLZ4
	case "gzip":
		return CompressionGzip
	case "none", "":
		return CompressionNone
	default:
		return CompressionZstd
	}
}

// getCompression returns the parquet-go compression codec.
func getCompression(ct CompressionType) compress.Codec {
	switch ct {
	case CompressionSnappy:
		return &parquet.Snappy
	case CompressionZstd:
		return &parquet.Zstd
	case CompressionLZ4:
		return &parquet.Lz4Raw
	case CompressionGzip:
		return &parquet.Gzip
	default:
		return &parquet.Uncompressed
	}
}

// ProfileRow is one stack line in the Parquet export, with the column chunk
// it was built from.
type ProfileRow struct {
	File              string `parquet:"file,zstd"`
	RowGroup          int32  `parquet:"row_group"`
	Column            int32  `parquet:"column"`
	Path              string `parquet:"path,zstd"`
	Value             int64  `parquet:"value"`
	CompressedBytes   int64  `parquet:"compressed_bytes"`
	UncompressedBytes int64  `parquet:"uncompressed_bytes"`
	Codec             string `parquet:"codec,optional"`
}

// ProfileRows pairs the stack lines of one file with the column chunks they
// were built from. lines must come from profile.Build on md.
func ProfileRows(file string, md profile.FileMetadata, lines []profile.StackLine) ([]ProfileRow, error) {
	if len(lines) != md.NumColumnChunks() {
		return nil, fmt.Errorf("%d stack lines for %d column chunks", len(lines), md.NumColumnChunks())
	}

	rows := make([]ProfileRow, 0, len(lines))
	for i, rg := range md.RowGroups {
		for j, col := range rg.Columns {
			line := lines[len(rows)]
			rows = append(rows, ProfileRow{
				File:              file,
				RowGroup:          int32(i),
				Column:            int32(j),
				Path:              line.Path,
				Value:             int64(line.Value),
				CompressedBytes:   int64(col.CompressedSize),
				UncompressedBytes: int64(col.UncompressedSize),
				Codec:             col.Codec,
			})
		}
	}
	return rows, nil
}

// ProfileWriter writes profile rows to a Parquet stream.
type ProfileWriter struct {
	writer   *parquet.GenericWriter[ProfileRow]
	rowCount int64
	closed   bool
}

// NewProfileWriter creates a new profile Parquet writer on w. Closing the
// writer writes the footer but does not close w.
func NewProfileWriter(w io.Writer, opts Options) *ProfileWriter {
	writerOpts := []parquet.WriterOption{
		parquet.Compression(getCompression(opts.Compression)),
		parquet.CreatedBy("parquet-flamegraph", "", ""),
	}

	return &ProfileWriter{
		writer: parquet.NewGenericWriter[ProfileRow](w, writerOpts...),
	}
}

// Write writes rows to the Parquet stream.
func (w *ProfileWriter) Write(rows []ProfileRow) error {
	if len(rows) == 0 {
		return nil
	}

	if w.closed {
		return errors.ErrWriterClosed
	}

	n, err := w.writer.Write(rows)
	if err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	w.rowCount += int64(n)
	return nil
}

// Close flushes buffered rows and writes the footer.
func (w *ProfileWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.writer.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}

// RowCount returns the number of rows written.
func (w *ProfileWriter) RowCount() int64 {
	return w.rowCount
}
