/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"io"
	"os"
)

// ReadOptions configures directory reading.
type ReadOptions struct {
	// MaxTables is the largest numTables accepted. Zero selects DefaultMaxTables; values above
	// 65535 are capped to the format limit.
	MaxTables int
}

// ReadDirectory reads the font directory from `r`, which must be positioned at the start of the
// font. On success exactly DirectorySize() bytes have been consumed from `r`.
func ReadDirectory(r io.Reader) (*Font, error) {
	return ReadDirectoryWithOptions(r, ReadOptions{})
}

// ReadDirectoryWithOptions is like ReadDirectory with explicit options.
func ReadDirectoryWithOptions(r io.Reader, opts ReadOptions) (*Font, error) {
	return parseFont(newByteReader(r), opts)
}

// ParseBytes reads the font directory from the start of `data`.
func ParseBytes(data []byte) (*Font, error) {
	return ReadDirectory(bytes.NewReader(data))
}

// ParseFile reads the font directory from the file given by path.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return ReadDirectory(f)
}

// DescribeField returns the description of a field of the Offset Table or Table Record schema.
func DescribeField(name string) (string, bool) {
	for _, s := range []*Schema{OffsetTableSchema, TableRecordSchema} {
		if desc, ok := s.Description(name); ok {
			return desc, true
		}
	}
	return "", false
}
