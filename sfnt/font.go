/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/unidoc/unisfnt/common"
)

// Font is the decoded directory of an sfnt font file: the Offset Table and the table records
// that follow it. A Font is immutable after it has been read.
type Font struct {
	ot   OffsetTable
	trec *tableRecords // table records (references other tables).
}

// Kind classifies a font by its sfntVersion.
type Kind int

// Font kinds.
const (
	KindUnknown  Kind = iota
	KindTrueType      // 0x00010000 or 'true'
	KindCFF           // 'OTTO'
	KindType1         // 'typ1'
)

func (k Kind) String() string {
	switch k {
	case KindTrueType:
		return "TrueType"
	case KindCFF:
		return "OpenType/CFF"
	case KindType1:
		return "Type1"
	}
	return "unknown"
}

// parseFont reads the Offset Table and the table records from `r`.
func parseFont(r *byteReader, opts ReadOptions) (*Font, error) {
	f := &Font{}

	var err error
	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}
	common.Log.Debug("Offset table: %s", f.ot)

	numTables := int(f.ot.NumTables())
	if err := opts.checkNumTables(numTables); err != nil {
		common.Log.Debug("Invalid number of tables: %v", err)
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r, numTables)
	if err != nil {
		return nil, err
	}
	common.Log.Debug("Read %d table records (%d bytes)", numTables, f.DirectorySize())

	return f, nil
}

// OffsetTable returns the decoded Offset Table.
func (f *Font) OffsetTable() OffsetTable {
	return f.ot
}

// NumTables returns the number of table records in the directory.
func (f *Font) NumTables() int {
	return len(f.trec.list)
}

// TableRecords returns the table records in file order.
func (f *Font) TableRecords() []TableRecord {
	list := make([]TableRecord, len(f.trec.list))
	copy(list, f.trec.list)
	return list
}

// Table returns the record of table `tableName`, e.g. "glyf" or "cvt".
func (f *Font) Table(tableName string) (TableRecord, bool) {
	tr, has := f.trec.trMap[MakeTag(tableName).String()]
	return tr, has
}

// TableByTag returns the record with tag `t`. Unlike Table it also finds tags that are not
// printable text.
func (f *Font) TableByTag(t Tag) (TableRecord, bool) {
	tr, has := f.trec.trMap[t.String()]
	return tr, has
}

// HasTable returns true if the directory has a record for `tableName`.
func (f *Font) HasTable(tableName string) bool {
	return f.trec.HasTable(tableName)
}

// Tags returns the table tags in file order.
func (f *Font) Tags() []Tag {
	tags := make([]Tag, len(f.trec.list))
	for i, tr := range f.trec.list {
		tags[i] = tr.Tag()
	}
	return tags
}

// DirectorySize returns the byte size of the directory: the Offset Table plus all table records.
func (f *Font) DirectorySize() int {
	return offsetTableSize + len(f.trec.list)*tableRecordSize
}

// Kind returns the flavor of the font as announced by sfntVersion.
func (f *Font) Kind() Kind {
	switch f.ot.SfntVersion() {
	case 0x00010000, MakeTag("true").Uint32():
		return KindTrueType
	case MakeTag("OTTO").Uint32():
		return KindCFF
	case MakeTag("typ1").Uint32():
		return KindType1
	}
	return KindUnknown
}

// TableSection returns a reader over the bytes of table `tableName` in `ra`, which must be the
// source the directory was read from.
func (f *Font) TableSection(ra io.ReaderAt, tableName string) (*io.SectionReader, error) {
	tr, has := f.Table(tableName)
	if !has {
		return nil, fmt.Errorf("table %s: %w", tableName, errRequiredField)
	}
	return tr.Section(ra), nil
}

// EncodeDirectory returns the encoding of the Offset Table followed by the table records.
func (f *Font) EncodeDirectory() ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)

	err := f.writeOffsetTable(w)
	if err != nil {
		return nil, err
	}

	err = f.writeTableRecords(w)
	if err != nil {
		return nil, err
	}
	if w.bufferedLen() != f.DirectorySize() {
		return nil, fmt.Errorf("directory encoded to %d bytes, expected %d: %w",
			w.bufferedLen(), f.DirectorySize(), errRangeCheck)
	}

	if err := w.flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *Font) String() string {
	return fmt.Sprintf("%s\n%s", f.ot, f.trec)
}
