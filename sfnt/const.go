/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "errors"

var (
	errTypeCheck     = errors.New("type check error")
	errRangeCheck    = errors.New("range check error")
	errRequiredField = errors.New("required field missing")
	errNilReceiver   = errors.New("receiver pointer not initialized")
)

// Error kinds reported by the decoder. Use errors.Is against these to classify a failure and
// errors.As with the typed errors in errors.go to get the details.
var (
	ErrTruncatedInput   = errors.New("truncated input")
	ErrDomain           = errors.New("value outside of atom type domain")
	ErrInvalidDirectory = errors.New("invalid table directory")
)

const (
	// offsetTableSize is the byte size of the sfnt Offset Table.
	offsetTableSize = 12
	// tableRecordSize is the byte size of one Table Directory Entry.
	tableRecordSize = 16

	// DefaultMaxTables is the numTables limit applied when ReadOptions does not set one.
	DefaultMaxTables = 1024
	// maxTablesFormat is the largest count representable by the uint16 numTables field.
	maxTablesFormat = 0xFFFF
)
