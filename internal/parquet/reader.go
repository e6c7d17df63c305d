package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"
	"github.com/xtxerr/parquet-flamegraph/internal/errors"
	"github.com/xtxerr/parquet-flamegraph/internal/profile"
)

// openFile opens path and decodes its footer. The caller closes the returned
// os.File.
func openFile(path string) (*os.File, *parquet.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WrapIO(err, "open", path)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, errors.WrapIO(err, "stat", path)
	}

	pf, err := parquet.OpenFile(f, stat.Size(),
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true),
	)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("read footer of %s: %w: %w", path, errors.ErrMetadataParse, err)
	}

	return f, pf, nil
}

// ReadMetadata reads the footer of the Parquet file at path.
func ReadMetadata(path string) (profile.FileMetadata, error) {
	f, pf, err := openFile(path)
	if err != nil {
		return profile.FileMetadata{}, err
	}
	defer f.Close()

	md, err := ConvertMetadata(pf.Metadata())
	if err != nil {
		return profile.FileMetadata{}, errors.Wrap(err, path)
	}
	return md, nil
}

// ConvertMetadata copies the row group and column chunk sizes out of a
// decoded footer.
func ConvertMetadata(meta *format.FileMetaData) (profile.FileMetadata, error) {
	if meta == nil {
		return profile.FileMetadata{}, fmt.Errorf("missing footer: %w", errors.ErrMetadataParse)
	}

	md := profile.FileMetadata{
		NumRows:   meta.NumRows,
		CreatedBy: meta.CreatedBy,
		RowGroups: make([]profile.RowGroup, len(meta.RowGroups)),
	}

	for i := range meta.RowGroups {
		rg := &meta.RowGroups[i]
		columns := make([]profile.ColumnEntry, len(rg.Columns))

		for j := range rg.Columns {
			cm := &rg.Columns[j].MetaData
			if cm.TotalCompressedSize < 0 || cm.TotalUncompressedSize < 0 {
				return profile.FileMetadata{}, fmt.Errorf("row group %d column %d: negative size: %w",
					i, j, errors.ErrMetadataParse)
			}

			columns[j] = profile.ColumnEntry{
				Path:             append([]string(nil), cm.PathInSchema...),
				CompressedSize:   uint64(cm.TotalCompressedSize),
				UncompressedSize: uint64(cm.TotalUncompressedSize),
				Codec:            fmt.Sprint(cm.Codec),
			}
		}

		md.RowGroups[i] = profile.RowGroup{
			Columns: columns,
			NumRows: rg.NumRows,
		}
	}

	return md, nil
}

// FileInfo holds information about a Parquet file.
type FileInfo struct {
	Path         string
	Size         int64
	NumRows      int64
	NumRowGroups int
	NumColumns   int
	CreatedBy    string
	Metadata     map[string]string
}

// GetFileInfo returns information about a Parquet file.
func GetFileInfo(path string) (*FileInfo, error) {
	f, pf, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.WrapIO(err, "stat", path)
	}

	meta := pf.Metadata()
	info := &FileInfo{
		Path:         path,
		Size:         stat.Size(),
		NumRows:      pf.NumRows(),
		NumRowGroups: len(meta.RowGroups),
		NumColumns:   len(pf.Schema().Columns()),
		CreatedBy:    meta.CreatedBy,
		Metadata:     make(map[string]string, len(meta.KeyValueMetadata)),
	}
	for _, kv := range meta.KeyValueMetadata {
		info.Metadata[kv.Key] = kv.Value
	}

	return info, nil
}

// ProfileReader reads an exported profile back from a Parquet file.
type ProfileReader struct {
	file   *os.File
	reader *parquet.GenericReader[ProfileRow]
	path   string
}

// NewProfileReader creates a new profile Parquet reader.
func NewProfileReader(path string) (*ProfileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO(err, "open", path)
	}

	return &ProfileReader{
		file:   f,
		reader: parquet.NewGenericReader[ProfileRow](f),
		path:   path,
	}, nil
}

// ReadAll reads all rows from the file.
func (r *ProfileReader) ReadAll() ([]ProfileRow, error) {
	rows := make([]ProfileRow, r.reader.NumRows())

	n, err := r.reader.Read(rows)
	if err != nil && n < len(rows) {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return rows[:n], nil
}

// NumRows returns the total number of rows in the file.
func (r *ProfileReader) NumRows() int64 {
	return r.reader.NumRows()
}

// Close closes the reader.
func (r *ProfileReader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// Path returns the file path.
func (r *ProfileReader) Path() string {
	return r.path
}
