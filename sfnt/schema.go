/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/unidoc/unisfnt/common"
)

// Field declares one entry of a table schema.
type Field struct {
	Type        AtomType
	Name        string
	Description string
}

// Schema is an ordered list of typed fields describing a fixed-layout record. A schema is
// immutable once built and can be shared between goroutines.
type Schema struct {
	name    string
	fields  []Field
	offsets []int
	index   map[string]int
	size    int
}

// NewSchema returns the schema `name` made of `fields` in the given order. Field names must be
// unique and non-empty and every field must have a valid atom type.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema %s: no fields: %w", name, errRequiredField)
	}

	s := &Schema{
		name:    name,
		fields:  make([]Field, len(fields)),
		offsets: make([]int, len(fields)),
		index:   make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)

	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %s: field %d has no name: %w", name, i, errRequiredField)
		}
		if !f.Type.Valid() {
			return nil, fmt.Errorf("schema %s: field %s: %w: %s", name, f.Name, errTypeCheck, f.Type)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("schema %s: duplicate field %s", name, f.Name)
		}
		s.index[f.Name] = i
		s.offsets[i] = s.size
		s.size += f.Type.Size()
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is meant for package-level schema tables.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of the schema.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the field list.
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Size returns the number of bytes taken by one record, the sum of all field widths.
func (s *Schema) Size() int {
	return s.size
}

// Field returns the field called `name`.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// FieldOffset returns the byte offset of field `name` from the start of a record.
func (s *Schema) FieldOffset(name string) (int, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.offsets[i], true
}

// Description returns the documentation string of field `name`.
func (s *Schema) Description(name string) (string, bool) {
	f, ok := s.Field(name)
	return f.Description, ok
}

// Descriptions returns a map from field name to description.
func (s *Schema) Descriptions() map[string]string {
	m := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		m[f.Name] = f.Description
	}
	return m
}

// Decode reads one record from `r`, consuming exactly s.Size() bytes on success.
func (s *Schema) Decode(r io.Reader) (*Record, error) {
	return s.decode(newByteReader(r))
}

// DecodeBytes decodes one record from the start of `b`. Trailing bytes are ignored.
func (s *Schema) DecodeBytes(b []byte) (*Record, error) {
	return s.decode(newByteReader(bytes.NewReader(b)))
}

// decode reads the fields of `s` from `r` in declared order. A failure at any field aborts the
// whole record.
func (s *Schema) decode(r *byteReader) (*Record, error) {
	start := r.Offset()
	values := make([]Value, len(s.fields))
	for i, f := range s.fields {
		v, err := r.readAtom(f.Type)
		if err != nil {
			var te *TruncatedInputError
			if errors.As(err, &te) {
				te.Schema = s.name
				te.Field = f.Name
			}
			common.Log.Debug("%s: field %s at offset %d: %v", s.name, f.Name, start+int64(s.offsets[i]), err)
			return nil, err
		}
		common.Log.Trace("%s.%s = %s", s.name, f.Name, v)
		values[i] = v
	}
	return &Record{schema: s, values: values}, nil
}

// NewRecord builds a record of `s` from `values`, given in field order. Each value must be of the
// atom type declared for its field.
func (s *Schema) NewRecord(values ...Value) (*Record, error) {
	if len(values) != len(s.fields) {
		return nil, fmt.Errorf("schema %s: %d values for %d fields: %w",
			s.name, len(values), len(s.fields), errRangeCheck)
	}
	rec := &Record{schema: s, values: make([]Value, len(values))}
	for i, f := range s.fields {
		v := values[i]
		if v == nil || v.Type() != f.Type {
			return nil, newDomainError(f.Type, v, errTypeCheck)
		}
		rec.values[i] = v
	}
	return rec, nil
}

// Encode returns the byte encoding of `rec`, which must be a record of `s`.
func (s *Schema) Encode(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	if err := s.encode(w, rec); err != nil {
		return nil, err
	}
	if err := w.flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Schema) encode(w *byteWriter, rec *Record) error {
	if rec == nil {
		return errNilReceiver
	}
	if rec.schema != s {
		return fmt.Errorf("record of %s encoded with schema %s: %w", rec.schema.name, s.name, errTypeCheck)
	}
	for i, f := range s.fields {
		if err := w.writeAtom(f.Type, rec.values[i]); err != nil {
			return err
		}
	}
	return nil
}
