/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A head-like schema touching the wider atom types.
var testHeadSchema = MustSchema("head",
	Field{TypeUint16, "majorVersion", "Major version number"},
	Field{TypeUint16, "minorVersion", "Minor version number"},
	Field{TypeFixed, "fontRevision", "Set by font manufacturer"},
	Field{TypeUint32, "magicNumber", "Set to 0x5F0F3CF5"},
	Field{TypeLongDateTime, "created", "Created date"},
	Field{TypeFWord, "xMin", "Minimum x for all glyph bounding boxes"},
	Field{TypeF2Dot14, "scale", "Test scale"},
	Field{TypeInt8, "delta", "Test delta"},
	Field{TypeUint24, "varIndex", "Test index"},
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema("pair",
		Field{TypeUint16, "a", "first"},
		Field{TypeTag, "b", "second"},
	)
	require.NoError(t, err)
	assert.Equal(t, "pair", s.Name())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 6, s.Size())

	off, ok := s.FieldOffset("b")
	require.True(t, ok)
	assert.Equal(t, 2, off)
	_, ok = s.FieldOffset("c")
	assert.False(t, ok)

	desc, ok := s.Description("a")
	require.True(t, ok)
	assert.Equal(t, "first", desc)
	assert.Equal(t, map[string]string{"a": "first", "b": "second"}, s.Descriptions())

	// The field list is a copy.
	fields := s.Fields()
	fields[0].Name = "changed"
	f, ok := s.Field("a")
	require.True(t, ok)
	assert.Equal(t, TypeUint16, f.Type)
}

func TestNewSchemaErrors(t *testing.T) {
	testcases := []struct {
		name   string
		fields []Field
	}{
		{"empty", nil},
		{"unnamed", []Field{{TypeUint8, "", ""}}},
		{"invalid type", []Field{{TypeInvalid, "x", ""}}},
		{"duplicate", []Field{{TypeUint8, "x", ""}, {TypeUint16, "x", ""}}},
	}

	for _, tcase := range testcases {
		_, err := NewSchema(tcase.name, tcase.fields...)
		assert.Error(t, err, tcase.name)
	}

	assert.Panics(t, func() {
		MustSchema("bad")
	})
}

func TestSchemaSize(t *testing.T) {
	assert.Equal(t, 12, OffsetTableSchema.Size())
	assert.Equal(t, 16, TableRecordSchema.Size())
	assert.Equal(t, offsetTableSize, OffsetTableSchema.Size())
	assert.Equal(t, tableRecordSize, TableRecordSchema.Size())
	assert.Equal(t, 2+2+4+4+8+2+2+1+3, testHeadSchema.Size())
}

func buildHeadRecord(t *testing.T) []byte {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(Uint16(1), Uint16(0), Fixed(1.5), Uint32(0x5F0F3CF5), LongDateTime(3734255578),
		FWord(-120), F2Dot14(-0.5), Int8(-3), Uint24(0xABCDEF))
	require.NoError(t, err)
	require.NoError(t, w.flush())
	return buf.Bytes()
}

func TestSchemaDecode(t *testing.T) {
	data := buildHeadRecord(t)
	require.Len(t, data, testHeadSchema.Size())

	rec, err := testHeadSchema.DecodeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, testHeadSchema, rec.Schema())
	assert.Equal(t, testHeadSchema.Len(), rec.Len())
	assert.Equal(t, len(data), rec.Size())
	assert.Equal(t, []string{"majorVersion", "minorVersion", "fontRevision", "magicNumber",
		"created", "xMin", "scale", "delta", "varIndex"}, rec.Names())

	v, ok := rec.Get("fontRevision")
	require.True(t, ok)
	assert.Equal(t, Fixed(1.5), v)

	magic, err := rec.Uint("magicNumber")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x5F0F3CF5), magic)

	xMin, err := rec.Int("xMin")
	require.NoError(t, err)
	assert.Equal(t, int64(-120), xMin)

	varIndex, err := rec.Uint("varIndex")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xABCDEF), varIndex)

	_, err = rec.Uint("xMin")
	assert.True(t, errors.Is(err, errTypeCheck))
	_, err = rec.Int("missing")
	assert.True(t, errors.Is(err, errRequiredField))

	f, v := rec.At(6)
	assert.Equal(t, "scale", f.Name)
	assert.Equal(t, F2Dot14(-0.5), v)

	desc, ok := rec.Description("magicNumber")
	require.True(t, ok)
	assert.Equal(t, "Set to 0x5F0F3CF5", desc)
}

func TestSchemaDecodeDeterministic(t *testing.T) {
	data := buildHeadRecord(t)

	a, err := testHeadSchema.DecodeBytes(data)
	require.NoError(t, err)
	b, err := testHeadSchema.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())

	enc, err := a.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, enc)
}

func TestSchemaDecodeConsumesExactly(t *testing.T) {
	data := append(buildHeadRecord(t), 0xAA, 0xBB)
	r := bytes.NewReader(data)

	_, err := testHeadSchema.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestSchemaDecodeTruncated(t *testing.T) {
	data := buildHeadRecord(t)

	for n := 0; n < len(data); n++ {
		rec, err := testHeadSchema.DecodeBytes(data[:n])
		require.Error(t, err, "length %d", n)
		assert.Nil(t, rec)
		assert.True(t, errors.Is(err, ErrTruncatedInput))

		var te *TruncatedInputError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "head", te.Schema)
		assert.Equal(t, -1, te.Entry)

		// The failing field is the one containing byte n.
		var expected Field
		for _, f := range testHeadSchema.Fields() {
			off, _ := testHeadSchema.FieldOffset(f.Name)
			if n < off+f.Type.Size() {
				expected = f
				break
			}
		}
		off, _ := testHeadSchema.FieldOffset(expected.Name)
		assert.Equal(t, expected.Name, te.Field, "length %d", n)
		assert.Equal(t, int64(off), te.Offset)
		assert.Equal(t, expected.Type.Size(), te.Need)
		assert.Equal(t, n-off, te.Have)
	}
}

func TestSchemaNewRecord(t *testing.T) {
	rec, err := TableRecordSchema.NewRecord(MakeTag("head"), Uint32(0xDEADBEEF), Offset32(268), Uint32(54))
	require.NoError(t, err)

	data, err := TableRecordSchema.Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		'h', 'e', 'a', 'd',
		0xDE, 0xAD, 0xBE, 0xEF,
		0x00, 0x00, 0x01, 0x0C,
		0x00, 0x00, 0x00, 0x36,
	}, data)

	back, err := TableRecordSchema.DecodeBytes(data)
	require.NoError(t, err)
	assert.True(t, rec.Equal(back))

	// Offset32 and uint32 do not mix.
	_, err = TableRecordSchema.NewRecord(MakeTag("head"), Uint32(0), Uint32(268), Uint32(54))
	assert.True(t, errors.Is(err, ErrDomain))

	_, err = TableRecordSchema.NewRecord(MakeTag("head"))
	assert.True(t, errors.Is(err, errRangeCheck))

	// Records only encode with their own schema.
	_, err = OffsetTableSchema.Encode(rec)
	assert.True(t, errors.Is(err, errTypeCheck))
	_, err = OffsetTableSchema.Encode(nil)
	assert.Equal(t, errNilReceiver, err)
}
