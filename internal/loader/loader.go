// Package loader handles configuration file loading and validation.
//
// This package is responsible for:
//   - Loading YAML configuration files
//   - Expanding environment variables inside the file
//   - Applying PARQUET_FLAMEGRAPH_* environment overrides
//   - Validating the merged configuration
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/xtxerr/parquet-flamegraph/internal/constants"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/flamegraph"
	"github.com/xtxerr/parquet-flamegraph/internal/logging"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Load
// =============================================================================

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment, in that order.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO(err, "read config", path)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// decode expands environment variables and unmarshals YAML over cfg.
// Unknown keys are rejected.
func decode(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// EnvDescription lists the supported environment variables.
func EnvDescription() string {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return desc
}

// =============================================================================
// Validate
// =============================================================================

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	v := errors.NewValidationErrors()

	if c.InputPath == "" {
		v.AddMissing("input_path")
	}

	if _, err := profile.ParseUnit(c.Unit); err != nil {
		v.Add(err)
	}

	if !constants.IsValidFormat(c.Format) {
		v.Add(errors.Wrapf(errors.ErrInvalidFormat, "%q (want one of svg, folded, parquet)", c.Format))
	}

	if !constants.IsValidCompression(c.Export.Compression) {
		v.AddField("export.compression", fmt.Sprintf("unknown codec %q", c.Export.Compression))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		v.AddField("log.level", err.Error())
	}

	opts := c.Flamegraph.RendererOptions()
	if err := opts.Validate(); err != nil {
		var fields *errors.ValidationErrors
		if errors.As(err, &fields) {
			for _, e := range fields.Errors {
				v.Add(e)
			}
		} else {
			v.Add(err)
		}
	}

	return v.Err()
}

// UnitValue returns the parsed unit. Call after Validate.
func (c *Config) UnitValue() profile.Unit {
	u, _ := profile.ParseUnit(c.Unit)
	return u
}

// Renderer returns the renderer options for the configured flame graph.
func (c *Config) Renderer() flamegraph.Options {
	return c.Flamegraph.RendererOptions()
}
