// Package parquet reads Parquet footers and exports size profiles as Parquet.
//
// The package provides:
//   - ReadMetadata, which decodes a file footer into a profile.FileMetadata
//   - GetFileInfo for a short description of a file
//   - ProfileWriter/ProfileReader for the Parquet export of stack lines
//   - Support for multiple compression algorithms (snappy, zstd, lz4, gzip)
//
// Only the footer is read. Column pages, page indexes and bloom filters are
// never loaded.
package parquet
