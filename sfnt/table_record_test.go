/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/unisfnt/common"
)

// buildDirectory returns an Offset Table with the given raw fields followed by one table record
// per tag. Tables are laid out back to back after the directory, each `length` bytes long.
func buildDirectory(t *testing.T, ot offsetTableValues, tags []string, length uint32) []byte {
	var buf bytes.Buffer
	buf.Write(offsetTableBytes(t, ot))

	offset := uint32(offsetTableSize + tableRecordSize*len(tags))
	w := newByteWriter(&buf)
	for i, tag := range tags {
		err := w.write(MakeTag(tag), Uint32(0x1000+uint32(i)), Offset32(offset), Uint32(length))
		require.NoError(t, err)
		offset += length
	}
	require.NoError(t, w.flush())
	return buf.Bytes()
}

func validDirectory(t *testing.T, tags ...string) []byte {
	sr, es, rs := SearchParams(uint16(len(tags)))
	return buildDirectory(t, offsetTableValues{0x00010000, uint16(len(tags)), sr, es, rs}, tags, 32)
}

// Test unmarshalling and marshalling table records.
func TestTableRecordsReadWrite(t *testing.T) {
	tags := []string{"OS/2", "cmap", "cvt", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "name", "post"}
	data := validDirectory(t, tags...)

	fnt, err := ParseBytes(data)
	require.NoError(t, err)
	require.Equal(t, len(tags), fnt.NumTables())

	for i, tr := range fnt.TableRecords() {
		assert.Equal(t, MakeTag(tags[i]), tr.Tag())
		assert.Equal(t, uint32(0x1000+i), tr.CheckSum())
		assert.Equal(t, uint32(12+16*len(tags)+32*i), tr.Offset())
		assert.Equal(t, uint32(32), tr.Length())
	}

	common.Log.Debug("Write table records")
	// Marshall to buffer.
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	err = fnt.writeTableRecords(bw)
	require.NoError(t, err)
	require.NoError(t, bw.flush())
	assert.Equal(t, data[12:], buf.Bytes())

	// Reload from buffer and check equality.
	br := newByteReader(bytes.NewReader(buf.Bytes()))
	trs, err := fnt.parseTableRecords(br, len(tags))
	require.NoError(t, err)
	require.Len(t, trs.list, len(tags))
	for i := range trs.list {
		assert.True(t, fnt.trec.list[i].Equal(trs.list[i].Record))
	}
}

func TestTableRecordsTruncatedEntry(t *testing.T) {
	tags := []string{"cmap", "glyf", "head", "loca"}
	data := validDirectory(t, tags...)

	for n := 12; n < len(data); n++ {
		_, err := ParseBytes(data[:n])
		require.Error(t, err, "length %d", n)
		assert.True(t, errors.Is(err, ErrTruncatedInput))

		var te *TruncatedInputError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "TableRecord", te.Schema)
		assert.Equal(t, (n-12)/16, te.Entry, "length %d", n)
		assert.Contains(t, te.Error(), "TableRecord.")
	}
}

func TestTableRecordsLookup(t *testing.T) {
	fnt, err := ParseBytes(validDirectory(t, "cvt", "glyf", "head"))
	require.NoError(t, err)

	assert.True(t, fnt.HasTable("cvt"))
	assert.True(t, fnt.HasTable("cvt "))
	assert.True(t, fnt.HasTable("glyf"))
	assert.False(t, fnt.HasTable("GSUB"))

	tr, has := fnt.Table("cvt ")
	require.True(t, has)
	assert.Equal(t, Tag{'c', 'v', 't', ' '}, tr.Tag())

	_, has = fnt.Table("kern")
	assert.False(t, has)

	assert.Contains(t, fnt.trec.String(), "Table record 2: glyf")

	// HasTable and Table agree on how a name maps to a tag.
	for _, name := range []string{"cvt", "cvt ", "glyf", "glyfX", "head", "GSUB", ""} {
		_, has := fnt.Table(name)
		assert.Equal(t, has, fnt.HasTable(name), "%q", name)
	}
}

func TestTableRecordsNonPrintableTag(t *testing.T) {
	data := validDirectory(t, "\x00\x00\x00\x0A", "head")
	data = append(data, bytes.Repeat([]byte{0xAB}, 32)...)
	data = append(data, bytes.Repeat([]byte{0xCD}, 32)...)

	fnt, err := ParseBytes(data)
	require.NoError(t, err)

	tag := Tag{0x00, 0x00, 0x00, 0x0A}
	tr, has := fnt.TableByTag(tag)
	require.True(t, has)
	assert.Equal(t, tag, tr.Tag())
	assert.Equal(t, "0x0000000A", tr.Tag().String())

	_, has = fnt.TableByTag(MakeTag("glyf"))
	assert.False(t, has)

	for i, tr := range fnt.TableRecords() {
		table, err := io.ReadAll(tr.Section(bytes.NewReader(data)))
		require.NoError(t, err)
		assert.Len(t, table, 32)
		assert.Equal(t, []byte{0xAB, 0xCD}[i], table[0], "%s", tr.Tag())
	}
}

func TestTableRecordsDuplicateTag(t *testing.T) {
	fnt, err := ParseBytes(validDirectory(t, "head", "head"))
	require.NoError(t, err)
	assert.Equal(t, 2, fnt.NumTables())

	tr, has := fnt.Table("head")
	require.True(t, has)
	assert.Equal(t, fnt.TableRecords()[0].Offset(), tr.Offset())
}

// Test the directory of a real TrueType font.
func TestGoRegularDirectory(t *testing.T) {
	fnt, err := ParseBytes(goregular.TTF)
	require.NoError(t, err)

	assert.Equal(t, KindTrueType, fnt.Kind())
	assert.Equal(t, int(fnt.OffsetTable().NumTables()), fnt.NumTables())

	for _, name := range []string{"cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp"} {
		assert.True(t, fnt.HasTable(name), "missing %s", name)
	}

	for _, tr := range fnt.TableRecords() {
		end := uint64(tr.Offset()) + uint64(tr.Length())
		assert.True(t, end <= uint64(len(goregular.TTF)), "%s out of bounds", tr.Tag())
		assert.True(t, tr.Offset() >= uint32(fnt.DirectorySize()), "%s overlaps directory", tr.Tag())
	}

	head, has := fnt.Table("head")
	require.True(t, has)
	assert.Equal(t, uint32(54), head.Length())

	enc, err := fnt.EncodeDirectory()
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF[:fnt.DirectorySize()], enc)
}
