/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a decoded atom. The set of implementations is closed: one Go type per AtomType.
type Value interface {
	// Type returns the atom type of the value.
	Type() AtomType
	String() string

	// put writes the big-endian encoding into `b`, which has the size of Type().
	put(b []byte) error
}

const (
	maxUint24    = 1<<24 - 1
	fixedScale   = 1 << 16
	f2dot14Scale = 1 << 14

	// epoch1904 is the Unix time of 1904-01-01T00:00:00Z, the LONGDATETIME epoch.
	epoch1904 = -2082844800
)

// Integer atom values. FWord/UFWord are quantities in font design units and Offset16/Offset32
// are byte offsets; they are distinct types so that a record keeps the declared semantics.
type (
	Uint8    uint8
	Int8     int8
	Uint16   uint16
	Int16    int16
	Uint24   uint32
	Uint32   uint32
	Int32    int32
	FWord    int16
	UFWord   uint16
	Offset16 uint16
	Offset32 uint32
)

// Fixed is a 16.16 signed fixed-point number held as its real value.
type Fixed float64

// F2Dot14 is a 2.14 signed fixed-point number held as its real value.
type F2Dot14 float64

// LongDateTime is a number of seconds since 1904-01-01T00:00:00Z.
type LongDateTime int64

// Tag is an opaque 4-byte identifier, usually four ASCII characters.
type Tag [4]byte

func (Uint8) Type() AtomType        { return TypeUint8 }
func (Int8) Type() AtomType         { return TypeInt8 }
func (Uint16) Type() AtomType       { return TypeUint16 }
func (Int16) Type() AtomType        { return TypeInt16 }
func (Uint24) Type() AtomType       { return TypeUint24 }
func (Uint32) Type() AtomType       { return TypeUint32 }
func (Int32) Type() AtomType        { return TypeInt32 }
func (Fixed) Type() AtomType        { return TypeFixed }
func (FWord) Type() AtomType        { return TypeFWord }
func (UFWord) Type() AtomType       { return TypeUFWord }
func (F2Dot14) Type() AtomType      { return TypeF2Dot14 }
func (LongDateTime) Type() AtomType { return TypeLongDateTime }
func (Tag) Type() AtomType          { return TypeTag }
func (Offset16) Type() AtomType     { return TypeOffset16 }
func (Offset32) Type() AtomType     { return TypeOffset32 }

func (v Uint8) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v Int8) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Uint16) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Int16) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Uint24) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Uint32) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Int32) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v FWord) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v UFWord) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Offset16) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Offset32) String() string { return strconv.FormatUint(uint64(v), 10) }
func (f Fixed) String() string    { return strconv.FormatFloat(float64(f), 'f', -1, 64) }
func (f F2Dot14) String() string  { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (v Uint8) put(b []byte) error {
	b[0] = byte(v)
	return nil
}

func (v Int8) put(b []byte) error {
	b[0] = byte(v)
	return nil
}

func (v Uint16) put(b []byte) error {
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func (v Int16) put(b []byte) error {
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func (v Uint24) put(b []byte) error {
	if v > maxUint24 {
		return errRangeCheck
	}
	b[0], b[1], b[2] = byte(v>>16), byte(v>>8), byte(v)
	return nil
}

func (v Uint32) put(b []byte) error {
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

func (v Int32) put(b []byte) error {
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

func (v FWord) put(b []byte) error {
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func (v UFWord) put(b []byte) error {
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func (v Offset16) put(b []byte) error {
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func (v Offset32) put(b []byte) error {
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

func (v LongDateTime) put(b []byte) error {
	binary.BigEndian.PutUint64(b, uint64(v))
	return nil
}

func (t Tag) put(b []byte) error {
	copy(b, t[:])
	return nil
}

// splitFixedPoint splits `x` into an integer part rounded toward negative infinity and a
// fraction scaled by `scale` and rounded to nearest. A fraction that rounds up to `scale` is
// carried into the integer part. ok is false if the integer part falls outside [min, max].
func splitFixedPoint(x float64, scale float64, min, max float64) (integral int64, fraction uint32, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, false
	}
	ip := math.Floor(x)
	fr := math.Round((x - ip) * scale)
	if fr >= scale {
		ip++
		fr = 0
	}
	if ip < min || ip > max {
		return 0, 0, false
	}
	return int64(ip), uint32(fr), true
}

func (f Fixed) put(b []byte) error {
	ip, fr, ok := splitFixedPoint(float64(f), fixedScale, math.MinInt16, math.MaxInt16)
	if !ok {
		return errRangeCheck
	}
	binary.BigEndian.PutUint16(b[0:2], uint16(int16(ip)))
	binary.BigEndian.PutUint16(b[2:4], uint16(fr))
	return nil
}

// Parts returns the integral and fractional halves of the 16.16 encoding of `f`.
func (f Fixed) Parts() (int16, uint16) {
	b := make([]byte, 4)
	if err := f.put(b); err != nil {
		return 0, 0
	}
	return int16(binary.BigEndian.Uint16(b[0:2])), binary.BigEndian.Uint16(b[2:4])
}

// Float64 returns `f` as a float64.
func (f Fixed) Float64() float64 {
	return float64(f)
}

func (f F2Dot14) put(b []byte) error {
	ip, fr, ok := splitFixedPoint(float64(f), f2dot14Scale, -2, 1)
	if !ok {
		return errRangeCheck
	}
	binary.BigEndian.PutUint16(b, uint16(int16(ip*f2dot14Scale+int64(fr))))
	return nil
}

// Float64 returns `f` as a float64.
func (f F2Dot14) Float64() float64 {
	return float64(f)
}

// Time returns `d` as a UTC time.
func (d LongDateTime) Time() time.Time {
	secs := int64(d)
	if secs < math.MinInt64-epoch1904 {
		secs = math.MinInt64 - epoch1904
	}
	return time.Unix(secs+epoch1904, 0).UTC()
}

func (d LongDateTime) String() string {
	return d.Time().Format(time.RFC3339)
}

// LongDateTimeFromTime returns the LONGDATETIME for `t`, truncated to whole seconds.
func LongDateTimeFromTime(t time.Time) LongDateTime {
	return LongDateTime(t.Unix() - epoch1904)
}

// MakeTag returns the tag for `s`, padded with spaces or cut to 4 bytes.
func MakeTag(s string) Tag {
	bb := []byte(s)
	if len(bb) > 4 {
		// Trim to 4 bytes.
		bb = bb[:4]
	}
	for len(bb) < 4 {
		// Pad with spaces to fill 4 bytes.
		bb = append(bb, ' ')
	}

	var t Tag
	copy(t[:], bb)
	return t
}

// String returns the tag text without trailing padding. Tags with bytes outside printable
// ASCII are shown in hex.
func (t Tag) String() string {
	for _, c := range t {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", binary.BigEndian.Uint32(t[:]))
		}
	}
	return strings.TrimRight(string(t[:]), " ")
}

// Uint32 returns the tag as a big-endian number.
func (t Tag) Uint32() uint32 {
	return binary.BigEndian.Uint32(t[:])
}
