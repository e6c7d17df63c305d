// Package input resolves the files a run reads and the path it writes to.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xtxerr/parquet-flamegraph/config"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
)

// ResolveInputs returns the Parquet files named by path.
//
// A directory yields every regular entry carrying the .parquet extension,
// sorted by path. A file must carry the extension itself.
func ResolveInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO(err, "stat", path)
	}

	if !info.IsDir() {
		if !IsParquetFile(path) {
			return nil, errors.Wrap(errors.ErrNotParquetFile, path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.WrapIO(err, "read directory", path)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsParquetFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s directory", errors.ErrNoParquetFiles, path)
	}

	sort.Strings(paths)
	return paths, nil
}

// IsParquetFile reports whether name carries the .parquet extension.
func IsParquetFile(name string) bool {
	return filepath.Ext(name) == config.ParquetExtension
}

// ResolveOutput returns path unchanged, or a fresh file name in the system
// temp directory when path is empty.
func ResolveOutput(path, ext string) (string, error) {
	if path != "" {
		return path, nil
	}

	name := fmt.Sprintf("%s%s.%s", config.TempFilePrefix, uuid.NewString(), ext)
	tmp := filepath.Join(os.TempDir(), name)

	if !utf8.ValidString(tmp) {
		return "", errors.Wrap(errors.ErrOutputPath,
			"cannot convert tmp file path to UTF-8, please retry by providing an output path")
	}
	return tmp, nil
}

// InputName returns the last element of the input path, used in titles.
func InputName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(filepath.Clean(path))
}
