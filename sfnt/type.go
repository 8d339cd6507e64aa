/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"encoding/binary"
	"fmt"
	"math"
)

/*
Types in sfnt fonts:
https://docs.microsoft.com/en-us/typography/opentype/spec/otff

Data Type	Description
--------------------------------------------------------
uint8	  8-bit unsigned integer.
int8	  8-bit signed integer.
uint16	  16-bit unsigned integer.
int16	  16-bit signed integer.
uint24	  24-bit unsigned integer.
uint32	  32-bit unsigned integer.
int32	  32-bit signed integer.
Fixed	  32-bit signed fixed-point number (16.16)
FWORD	  int16 that describes a quantity in font design units.
UFWORD	  uint16 that describes a quantity in font design units.
F2DOT14	  16-bit signed fixed number with the low 14 bits of fraction (2.14).
LONGDATETIME
          Date represented in number of seconds since 12:00 midnight, January 1, 1904.
          The value is represented as a signed 64-bit integer.
Tag	      Array of four uint8s (length = 32 bits) used to identify a table,
          design-variation axis, script, language system, feature, or baseline
Offset16  Short offset to a table, same as uint16, NULL offset = 0x0000
Offset32  Long offset to a table, same as uint32, NULL offset = 0x00000000
*/

// AtomType identifies one of the scalar sfnt data types. Every atom type has a fixed byte
// width and a big-endian codec.
type AtomType uint8

// Atom types. The zero value is not a valid type.
const (
	TypeInvalid AtomType = iota
	TypeUint8
	TypeInt8
	TypeUint16
	TypeInt16
	TypeUint24
	TypeUint32
	TypeInt32
	TypeFixed
	TypeFWord
	TypeUFWord
	TypeF2Dot14
	TypeLongDateTime
	TypeTag
	TypeOffset16
	TypeOffset32

	numAtomTypes
)

// atomInfo is the static descriptor of an atom type.
type atomInfo struct {
	name   string
	size   int
	desc   string
	decode func(b []byte) Value
	// Range of FromInt for integer-like types. Unused when intlike is false.
	intlike  bool
	min, max int64
}

var atomTypes = [numAtomTypes]atomInfo{
	TypeUint8: {
		name: "uint8", size: 1, desc: "8-bit unsigned integer",
		decode:  func(b []byte) Value { return Uint8(b[0]) },
		intlike: true, min: 0, max: math.MaxUint8,
	},
	TypeInt8: {
		name: "int8", size: 1, desc: "8-bit signed integer",
		decode:  func(b []byte) Value { return Int8(int8(b[0])) },
		intlike: true, min: math.MinInt8, max: math.MaxInt8,
	},
	TypeUint16: {
		name: "uint16", size: 2, desc: "16-bit unsigned integer",
		decode:  func(b []byte) Value { return Uint16(binary.BigEndian.Uint16(b)) },
		intlike: true, min: 0, max: math.MaxUint16,
	},
	TypeInt16: {
		name: "int16", size: 2, desc: "16-bit signed integer",
		decode:  func(b []byte) Value { return Int16(int16(binary.BigEndian.Uint16(b))) },
		intlike: true, min: math.MinInt16, max: math.MaxInt16,
	},
	TypeUint24: {
		name: "uint24", size: 3, desc: "24-bit unsigned integer",
		decode:  func(b []byte) Value { return Uint24(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])) },
		intlike: true, min: 0, max: maxUint24,
	},
	TypeUint32: {
		name: "uint32", size: 4, desc: "32-bit unsigned integer",
		decode:  func(b []byte) Value { return Uint32(binary.BigEndian.Uint32(b)) },
		intlike: true, min: 0, max: math.MaxUint32,
	},
	TypeInt32: {
		name: "int32", size: 4, desc: "32-bit signed integer",
		decode:  func(b []byte) Value { return Int32(int32(binary.BigEndian.Uint32(b))) },
		intlike: true, min: math.MinInt32, max: math.MaxInt32,
	},
	TypeFixed: {
		name: "Fixed", size: 4, desc: "32-bit signed fixed-point number (16.16)",
		decode: func(b []byte) Value {
			integral := int16(binary.BigEndian.Uint16(b[0:2]))
			fraction := binary.BigEndian.Uint16(b[2:4])
			return Fixed(float64(integral) + float64(fraction)/fixedScale)
		},
	},
	TypeFWord: {
		name: "FWORD", size: 2, desc: "int16 that describes a quantity in font design units",
		decode:  func(b []byte) Value { return FWord(int16(binary.BigEndian.Uint16(b))) },
		intlike: true, min: math.MinInt16, max: math.MaxInt16,
	},
	TypeUFWord: {
		name: "UFWORD", size: 2, desc: "uint16 that describes a quantity in font design units",
		decode:  func(b []byte) Value { return UFWord(binary.BigEndian.Uint16(b)) },
		intlike: true, min: 0, max: math.MaxUint16,
	},
	TypeF2Dot14: {
		name: "F2DOT14", size: 2, desc: "16-bit signed fixed number with the low 14 bits of fraction (2.14)",
		decode: func(b []byte) Value {
			return F2Dot14(float64(int16(binary.BigEndian.Uint16(b))) / f2dot14Scale)
		},
	},
	TypeLongDateTime: {
		name: "LONGDATETIME", size: 8,
		desc:    "date represented in number of seconds since 12:00 midnight, January 1, 1904 (signed 64-bit)",
		decode:  func(b []byte) Value { return LongDateTime(int64(binary.BigEndian.Uint64(b))) },
		intlike: true, min: math.MinInt64, max: math.MaxInt64,
	},
	TypeTag: {
		name: "Tag", size: 4, desc: "array of four uint8s used to identify a table, script, feature or similar",
		decode: func(b []byte) Value {
			var t Tag
			copy(t[:], b)
			return t
		},
	},
	TypeOffset16: {
		name: "Offset16", size: 2, desc: "short offset to a table, same as uint16",
		decode:  func(b []byte) Value { return Offset16(binary.BigEndian.Uint16(b)) },
		intlike: true, min: 0, max: math.MaxUint16,
	},
	TypeOffset32: {
		name: "Offset32", size: 4, desc: "long offset to a table, same as uint32",
		decode:  func(b []byte) Value { return Offset32(binary.BigEndian.Uint32(b)) },
		intlike: true, min: 0, max: math.MaxUint32,
	},
}

// AtomTypes returns all valid atom types in declaration order.
func AtomTypes() []AtomType {
	types := make([]AtomType, 0, numAtomTypes-1)
	for t := TypeUint8; t < numAtomTypes; t++ {
		types = append(types, t)
	}
	return types
}

// Valid returns true if `t` is one of the declared atom types.
func (t AtomType) Valid() bool {
	return t > TypeInvalid && t < numAtomTypes
}

// Size returns the byte width of `t`, or 0 for an invalid type.
func (t AtomType) Size() int {
	if !t.Valid() {
		return 0
	}
	return atomTypes[t].size
}

func (t AtomType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("AtomType(%d)", uint8(t))
	}
	return atomTypes[t].name
}

// Description returns the English description of `t`.
func (t AtomType) Description() string {
	if !t.Valid() {
		return ""
	}
	return atomTypes[t].desc
}

// Decode decodes `b` as a big-endian value of type `t`. `b` must hold exactly t.Size() bytes.
func (t AtomType) Decode(b []byte) (Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", errTypeCheck, t)
	}
	size := atomTypes[t].size
	if len(b) < size {
		return nil, &TruncatedInputError{Entry: -1, Need: size, Have: len(b)}
	}
	if len(b) > size {
		return nil, fmt.Errorf("%w: %s takes %d bytes, got %d", errRangeCheck, t, size, len(b))
	}
	return atomTypes[t].decode(b), nil
}

// Encode returns the big-endian encoding of `v`, exactly t.Size() bytes long. A DomainError is
// returned if `v` is not of type `t` or is out of its representable range.
func (t AtomType) Encode(v Value) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", errTypeCheck, t)
	}
	if v == nil || v.Type() != t {
		return nil, newDomainError(t, v, errTypeCheck)
	}
	b := make([]byte, atomTypes[t].size)
	if err := v.put(b); err != nil {
		return nil, newDomainError(t, v, err)
	}
	return b, nil
}

// FromInt returns the value of type `t` representing `i`. A DomainError is returned when `i` is
// out of range for `t` or when `t` is a Tag.
func (t AtomType) FromInt(i int64) (Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", errTypeCheck, t)
	}
	info := atomTypes[t]
	switch {
	case t == TypeFixed || t == TypeF2Dot14:
		return t.FromFloat(float64(i))
	case !info.intlike:
		return nil, newDomainError(t, i, errTypeCheck)
	case i < info.min || i > info.max:
		return nil, newDomainError(t, i, errRangeCheck)
	}

	switch t {
	case TypeUint8:
		return Uint8(i), nil
	case TypeInt8:
		return Int8(i), nil
	case TypeUint16:
		return Uint16(i), nil
	case TypeInt16:
		return Int16(i), nil
	case TypeUint24:
		return Uint24(i), nil
	case TypeUint32:
		return Uint32(i), nil
	case TypeInt32:
		return Int32(i), nil
	case TypeFWord:
		return FWord(i), nil
	case TypeUFWord:
		return UFWord(i), nil
	case TypeLongDateTime:
		return LongDateTime(i), nil
	case TypeOffset16:
		return Offset16(i), nil
	case TypeOffset32:
		return Offset32(i), nil
	}
	return nil, newDomainError(t, i, errTypeCheck)
}

// FromFloat returns the value of type `t` closest to `x`. Integer types only accept integral
// values. A DomainError is returned if `x` is NaN, infinite or out of range.
func (t AtomType) FromFloat(x float64) (Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", errTypeCheck, t)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, newDomainError(t, x, errRangeCheck)
	}

	var v Value
	switch t {
	case TypeFixed:
		v = Fixed(x)
	case TypeF2Dot14:
		v = F2Dot14(x)
	default:
		if !atomTypes[t].intlike || x != math.Trunc(x) {
			return nil, newDomainError(t, x, errTypeCheck)
		}
		// float64 cannot represent every int64; reject what would wrap.
		if x < math.MinInt64 || x >= math.MaxInt64 {
			return nil, newDomainError(t, x, errRangeCheck)
		}
		return t.FromInt(int64(x))
	}

	// Check that the fixed-point value is encodable.
	if err := v.put(make([]byte, t.Size())); err != nil {
		return nil, newDomainError(t, x, err)
	}
	return v, nil
}
