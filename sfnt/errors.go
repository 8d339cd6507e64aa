/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"fmt"
)

// TruncatedInputError is returned when fewer bytes are available than a field or record requires.
type TruncatedInputError struct {
	Schema string // Schema being decoded, empty for a bare atom decode.
	Field  string // Field being decoded, empty for a bare atom decode.
	Entry  int    // Index of the directory entry being read, -1 if not applicable.
	Offset int64  // Absolute byte offset of the field in the source.
	Need   int    // Bytes required by the field.
	Have   int    // Bytes that were actually available.
	Err    error  // Underlying I/O error, if any.
}

func (e *TruncatedInputError) Error() string {
	where := e.Field
	if e.Schema != "" {
		where = e.Schema + "." + e.Field
	}
	if e.Entry >= 0 {
		where = fmt.Sprintf("%s[%d]", where, e.Entry)
	}
	if where == "" {
		return fmt.Sprintf("%s at offset %d: need %d bytes, have %d", ErrTruncatedInput, e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("%s at offset %d reading %s: need %d bytes, have %d",
		ErrTruncatedInput, e.Offset, where, e.Need, e.Have)
}

// Is reports whether `target` is ErrTruncatedInput.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// Unwrap returns the underlying I/O error.
func (e *TruncatedInputError) Unwrap() error {
	return e.Err
}

// DomainError is returned when a value cannot be encoded by an atom type.
type DomainError struct {
	Type  AtomType
	Value interface{}
	Err   error // errTypeCheck or errRangeCheck.
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v (%T) cannot be encoded as %s: %v", ErrDomain, e.Value, e.Value, e.Type, e.Err)
}

// Is reports whether `target` is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Unwrap returns the type or range check error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// InvalidDirectoryError is returned when the directory geometry exceeds the accepted bounds.
type InvalidDirectoryError struct {
	NumTables int
	MaxTables int
	Offset    int64 // Offset of the numTables field.
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("%s at offset %d: numTables %d exceeds maximum %d",
		ErrInvalidDirectory, e.Offset, e.NumTables, e.MaxTables)
}

// Is reports whether `target` is ErrInvalidDirectory.
func (e *InvalidDirectoryError) Is(target error) bool {
	return target == ErrInvalidDirectory
}

func newDomainError(t AtomType, v interface{}, cause error) error {
	return &DomainError{Type: t, Value: v, Err: cause}
}
