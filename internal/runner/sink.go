package runner

import (
	"bufio"
	"io"

	"github.com/xtxerr/parquet-flamegraph/internal/constants"
	"github.com/xtxerr/parquet-flamegraph/internal/flamegraph"
	"github.com/xtxerr/parquet-flamegraph/internal/parquet"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

// sink receives the stack lines of each file, in processing order.
type sink interface {
	Add(file string, md profile.FileMetadata, lines []profile.StackLine) error
	Close() error
}

// svgSink aggregates every file into one flame graph, drawn on Close.
type svgSink struct {
	w         io.Writer
	opts      flamegraph.Options
	collector *flamegraph.Collector
}

func (s *svgSink) Add(_ string, _ profile.FileMetadata, lines []profile.StackLine) error {
	for _, l := range lines {
		s.collector.Add(l.Path, l.Value)
	}
	return nil
}

func (s *svgSink) Close() error {
	return s.collector.Render(s.opts, s.w)
}

// foldedSink streams the raw protocol lines as they are built.
type foldedSink struct {
	w *bufio.Writer
}

func (s *foldedSink) Add(_ string, _ profile.FileMetadata, lines []profile.StackLine) error {
	for _, l := range lines {
		if _, err := s.w.WriteString(l.String()); err != nil {
			return err
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (s *foldedSink) Close() error {
	return s.w.Flush()
}

// parquetSink exports the lines as rows of a Parquet table.
type parquetSink struct {
	writer *parquet.ProfileWriter
}

func (s *parquetSink) Add(file string, md profile.FileMetadata, lines []profile.StackLine) error {
	rows, err := parquet.ProfileRows(file, md, lines)
	if err != nil {
		return err
	}
	return s.writer.Write(rows)
}

func (s *parquetSink) Close() error {
	return s.writer.Close()
}

func newSink(cfg *Config, w io.Writer) sink {
	switch cfg.Format {
	case constants.FormatFolded:
		return &foldedSink{w: bufio.NewWriter(w)}
	case constants.FormatParquet:
		opts := parquet.Options{Compression: parquet.ParseCompressionType(cfg.Compression)}
		return &parquetSink{writer: parquet.NewProfileWriter(w, opts)}
	default:
		return &svgSink{w: w, opts: cfg.Renderer, collector: flamegraph.NewCollector()}
	}
}
