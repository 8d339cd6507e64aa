/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"fmt"
)

// Record is a decoded table record: the values of a schema's fields in declared order.
type Record struct {
	schema *Schema
	values []Value
}

// Schema returns the schema `r` was decoded with.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Len returns the number of fields in `r`.
func (r *Record) Len() int {
	return len(r.values)
}

// Size returns the encoded size of `r` in bytes.
func (r *Record) Size() int {
	return r.schema.Size()
}

// Get returns the value of field `name`.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.schema.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// At returns the i-th field and its value.
func (r *Record) At(i int) (Field, Value) {
	return r.schema.fields[i], r.values[i]
}

// Names returns the field names in declared order.
func (r *Record) Names() []string {
	names := make([]string, len(r.schema.fields))
	for i, f := range r.schema.fields {
		names[i] = f.Name
	}
	return names
}

// Description returns the schema description of field `name`.
func (r *Record) Description(name string) (string, bool) {
	return r.schema.Description(name)
}

// Uint returns the value of an unsigned integer field as uint64.
func (r *Record) Uint(name string) (uint64, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("%s: no field %s: %w", r.schema.name, name, errRequiredField)
	}
	switch t := v.(type) {
	case Uint8:
		return uint64(t), nil
	case Uint16:
		return uint64(t), nil
	case Uint24:
		return uint64(t), nil
	case Uint32:
		return uint64(t), nil
	case UFWord:
		return uint64(t), nil
	case Offset16:
		return uint64(t), nil
	case Offset32:
		return uint64(t), nil
	}
	return 0, fmt.Errorf("%s.%s is %s: %w", r.schema.name, name, v.Type(), errTypeCheck)
}

// Int returns the value of a signed integer field as int64.
func (r *Record) Int(name string) (int64, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("%s: no field %s: %w", r.schema.name, name, errRequiredField)
	}
	switch t := v.(type) {
	case Int8:
		return int64(t), nil
	case Int16:
		return int64(t), nil
	case Int32:
		return int64(t), nil
	case FWord:
		return int64(t), nil
	case LongDateTime:
		return int64(t), nil
	}
	return 0, fmt.Errorf("%s.%s is %s: %w", r.schema.name, name, v.Type(), errTypeCheck)
}

// Equal returns true if `o` has the same schema and the same values as `r`.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.schema != o.schema || len(r.values) != len(o.values) {
		return false
	}
	for i := range r.values {
		if r.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// Bytes returns the encoding of `r`.
func (r *Record) Bytes() ([]byte, error) {
	return r.schema.Encode(r)
}

func (r *Record) String() string {
	var buf bytes.Buffer
	buf.WriteString(r.schema.name)
	buf.WriteString("{")
	for i, f := range r.schema.fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s: %s", f.Name, r.values[i]))
	}
	buf.WriteString("}")
	return buf.String()
}
