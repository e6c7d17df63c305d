// parquet-flamegraph draws a flame graph of the compressed size of the
// columns of Parquet files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xtxerr/parquet-flamegraph/config"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/loader"
	"github.com/xtxerr/parquet-flamegraph/internal/logging"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
	"github.com/xtxerr/parquet-flamegraph/internal/runner"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	a.cmd.SetArgs(args)

	if err := a.cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

// flags holds the raw command line values.
type flags struct {
	configPath string
	inputPath  string
	outputPath string
	unit       profile.Unit
	format     string
	title      string
	palette    string
	width      int
	summary    bool
	inverted   bool
	logLevel   string
	logJSON    bool
}

type app struct {
	cmd    *cobra.Command
	flags  flags
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{stdout: stdout, stderr: stderr}

	a.cmd = &cobra.Command{
		Use:   "parquet-flamegraph -i <path>",
		Short: "Generate a flamegraph based on compressed memory used for parquet files",
		Long: "Generate a flamegraph based on compressed memory used for parquet files.\n\n" +
			"Every column chunk of every row group becomes one stack, sized by its\n" +
			"compressed bytes. Nested fields become nested frames.\n\n" +
			loader.EnvDescription(),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Flags())
		},
	}
	a.cmd.SetOut(stdout)
	a.cmd.SetErr(stderr)
	a.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	})

	f := a.cmd.Flags()
	f.StringVarP(&a.flags.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&a.flags.inputPath, "input-path", "i", "", "Input path to a parquet file or a directory of parquet files")
	f.StringVarP(&a.flags.outputPath, "output-path", "o", "", "Output path file, flamegraph will be saved in. [default: tmp file]")
	f.VarP(&a.flags.unit, "unit", "u", "Unit to display data (b, kb, mb, gb). This will truncate columns if their compressed size is less than 1 unit.")
	f.StringVarP(&a.flags.format, "format", "f", config.DefaultFormat, "Output format (svg, folded, parquet)")
	f.StringVar(&a.flags.title, "title", "", "Flame graph title [default: Flamegraph parquet <input name>]")
	f.StringVar(&a.flags.palette, "palette", config.DefaultPalette, "Frame palette (hot, mem, io, aqua)")
	f.IntVar(&a.flags.width, "width", config.DefaultImageWidth, "Image width in pixels")
	f.BoolVar(&a.flags.summary, "summary", false, "Print a per-column size table")
	f.BoolVar(&a.flags.inverted, "inverted", false, "Draw an icicle graph")
	f.StringVar(&a.flags.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	f.BoolVar(&a.flags.logJSON, "log-json", false, "Log as JSON")

	return a
}

// loadConfig merges the config file, the environment and the flags that
// were set explicitly.
func (a *app) loadConfig(fs *pflag.FlagSet) (*loader.Config, error) {
	cfg, err := loader.Load(a.flags.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("input-path") {
		cfg.InputPath = a.flags.inputPath
	}
	if fs.Changed("output-path") {
		cfg.OutputPath = a.flags.outputPath
	}
	if fs.Changed("unit") {
		cfg.Unit = a.flags.unit.String()
	}
	if fs.Changed("format") {
		cfg.Format = a.flags.format
	}
	if fs.Changed("title") {
		cfg.Flamegraph.Title = a.flags.title
	}
	if fs.Changed("palette") {
		cfg.Flamegraph.Palette = a.flags.palette
	}
	if fs.Changed("width") {
		cfg.Flamegraph.Width = a.flags.width
	}
	if fs.Changed("summary") {
		cfg.Summary = a.flags.summary
	}
	if fs.Changed("inverted") {
		cfg.Flamegraph.Inverted = a.flags.inverted
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if fs.Changed("log-json") {
		cfg.Log.JSON = a.flags.logJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) execute(fs *pflag.FlagSet) error {
	cfg, err := a.loadConfig(fs)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	logging.Init(a.stderr, level, cfg.Log.JSON)

	runCfg := runner.Config{
		InputPath:   cfg.InputPath,
		OutputPath:  cfg.OutputPath,
		Unit:        cfg.UnitValue(),
		Format:      cfg.Format,
		Renderer:    cfg.Renderer(),
		Compression: cfg.Export.Compression,
		Out:         a.stdout,
	}
	if cfg.Summary {
		runCfg.Summary = a.stdout
	}

	res, err := runner.Run(runCfg)
	if err != nil {
		return err
	}

	logging.Component("main").Info("run complete",
		"files", len(res.Files),
		"lines", res.Lines,
		"output", res.OutputPath)
	return nil
}
