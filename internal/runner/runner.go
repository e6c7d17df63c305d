// Package runner drives one parquet-flamegraph run: it resolves the input
// files, reads each footer, builds the stack lines and hands them to the
// output sink.
//
// Files are processed one after the other. The first error aborts the run;
// whatever was already written to the destination stays there.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/xtxerr/parquet-flamegraph/config"
	"github.com/xtxerr/parquet-flamegraph/internal/constants"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/flamegraph"
	"github.com/xtxerr/parquet-flamegraph/internal/input"
	"github.com/xtxerr/parquet-flamegraph/internal/logging"
	"github.com/xtxerr/parquet-flamegraph/internal/parquet"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
	"github.com/xtxerr/parquet-flamegraph/internal/report"
)

// Config describes one run.
type Config struct {
	// InputPath is a Parquet file or a directory of Parquet files.
	InputPath string

	// OutputPath is the destination. Empty means a new temp file.
	OutputPath string

	Unit   profile.Unit
	Format string

	// Renderer configures the svg format. An empty Title becomes
	// "Flamegraph parquet <input name>", an empty CountName the unit label.
	Renderer flamegraph.Options

	// Compression is the codec of the parquet format.
	Compression string

	// Summary receives the per-column table when not nil.
	Summary io.Writer

	// Out receives progress messages for the user when not nil.
	Out io.Writer
}

// Result describes a finished run.
type Result struct {
	Files      []string
	Lines      int
	Total      uint64
	OutputPath string
}

func (c *Config) validate() error {
	if !constants.IsValidFormat(c.Format) {
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", c.Format)
	}
	if !constants.IsValidCompression(c.Compression) {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown compression %q", c.Compression)
	}
	if c.Format == constants.FormatSVG {
		return c.Renderer.Validate()
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = config.DefaultFormat
	}
	if c.Renderer.Title == "" {
		c.Renderer.Title = fmt.Sprintf("%s %s", config.DefaultTitlePrefix, input.InputName(c.InputPath))
	}
	if c.Renderer.CountName == "" {
		c.Renderer.CountName = c.Unit.Label()
	}
	c.Renderer = c.Renderer.WithDefaults()
	if c.Compression == "" {
		c.Compression = config.DefaultExportCompression
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
}

// Run executes the run described by cfg.
func Run(cfg Config) (*Result, error) {
	log := logging.Component("runner")

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	files, err := input.ResolveInputs(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	outPath, err := input.ResolveOutput(cfg.OutputPath, constants.FormatExtension(cfg.Format))
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cfg.Out, "Flamegraph will be written in %s\n", outPath)

	f, err := os.Create(outPath)
	if err != nil {
		return nil, errors.WrapIO(err, "create", outPath)
	}
	defer f.Close()

	result := &Result{Files: files, OutputPath: outPath}
	out := newSink(&cfg, f)

	var summary *report.Summary
	if cfg.Summary != nil {
		summary = report.NewSummary()
	}

	for _, path := range files {
		logFileInfo(log, path)

		md, err := parquet.ReadMetadata(path)
		if err != nil {
			return nil, err
		}

		lines := profile.Build(md, cfg.Unit)
		if err := out.Add(path, md, lines); err != nil {
			return nil, errors.WrapIO(err, "write", outPath)
		}

		if summary != nil {
			summary.AddFile(md)
		}

		var total uint64
		for _, l := range lines {
			total += l.Value
		}
		result.Lines += len(lines)
		result.Total += total

		log.Info("file processed",
			"path", path,
			"row_groups", len(md.RowGroups),
			"lines", len(lines),
			"total", fmt.Sprintf("%d %s", total, cfg.Unit.Label()))
	}

	if err := out.Close(); err != nil {
		return nil, errors.WrapIO(err, "write", outPath)
	}
	if err := f.Close(); err != nil {
		return nil, errors.WrapIO(err, "close", outPath)
	}

	if summary != nil {
		summary.Write(cfg.Summary)
	}

	fmt.Fprintln(cfg.Out, "Data written successfully!")
	return result, nil
}

// logFileInfo logs a description of the file at debug level.
func logFileInfo(log *slog.Logger, path string) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	info, err := parquet.GetFileInfo(path)
	if err != nil {
		// ReadMetadata reports the same failure right after.
		return
	}
	log.Debug("reading footer",
		"path", path,
		"size", humanize.IBytes(uint64(info.Size)),
		"rows", info.NumRows,
		"row_groups", info.NumRowGroups,
		"columns", info.NumColumns,
		"created_by", info.CreatedBy)
}
