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

// TableRecordSchema is the layout of one Table Directory Entry (16 bytes).
var TableRecordSchema = MustSchema("TableRecord",
	Field{TypeTag, "tableTag", "Table identifier"},
	Field{TypeUint32, "checkSum", "Checksum for this table"},
	Field{TypeOffset32, "offset", "Offset from beginning of font file"},
	Field{TypeUint32, "length", "Length of this table"},
)

// TableRecord represents a table record, including name (tag) and file offset, size
// and checksum for integrity checking.
type TableRecord struct {
	*Record
}

// Tag returns the table identifier.
func (tr TableRecord) Tag() Tag {
	v, _ := tr.Get("tableTag")
	t, _ := v.(Tag)
	return t
}

// CheckSum returns the stored table checksum.
func (tr TableRecord) CheckSum() uint32 {
	v, _ := tr.Uint("checkSum")
	return uint32(v)
}

// Offset returns the offset of the table from the beginning of the font file.
func (tr TableRecord) Offset() uint32 {
	v, _ := tr.Uint("offset")
	return uint32(v)
}

// Length returns the length of the table in bytes.
func (tr TableRecord) Length() uint32 {
	v, _ := tr.Uint("length")
	return uint32(v)
}

// Section returns a reader over the bytes of the table in `ra`, the source the directory was
// read from.
func (tr TableRecord) Section(ra io.ReaderAt) *io.SectionReader {
	return io.NewSectionReader(ra, int64(tr.Offset()), int64(tr.Length()))
}

// tableRecords represents the set of table records in a font file.
// Includes a map by table name for quick lookup of records.
type tableRecords struct {
	list  []TableRecord
	trMap map[string]TableRecord
}

// parseTableRecords reads `numTables` consecutive records from `r`. A truncation is reported with
// the index of the entry that could not be completed.
func (f *Font) parseTableRecords(r *byteReader, numTables int) (*tableRecords, error) {
	trs := &tableRecords{
		list:  make([]TableRecord, 0, numTables),
		trMap: make(map[string]TableRecord, numTables),
	}

	for i := 0; i < numTables; i++ {
		rec, err := TableRecordSchema.decode(r)
		if err != nil {
			var te *TruncatedInputError
			if errors.As(err, &te) {
				te.Entry = i
			}
			common.Log.Debug("Table record %d of %d: %v", i, numTables, err)
			return nil, err
		}
		tr := TableRecord{Record: rec}
		trs.list = append(trs.list, tr)
		if _, dup := trs.trMap[tr.Tag().String()]; dup {
			// Lookups by tag return the first record.
			common.Log.Debug("Duplicate table tag %s in record %d", tr.Tag(), i)
			continue
		}
		trs.trMap[tr.Tag().String()] = tr
	}

	return trs, nil
}

func (f *Font) writeTableRecords(w *byteWriter) error {
	if f.trec == nil {
		common.Log.Debug("Table records not set")
		return errRequiredField
	}

	for _, tr := range f.trec.list {
		err := TableRecordSchema.encode(w, tr.Record)
		if err != nil {
			return err
		}
	}
	return nil
}

// HasTable returns true if there is a record of `tableName` in table records `trs`.
func (trs *tableRecords) HasTable(tableName string) bool {
	_, has := trs.trMap[MakeTag(tableName).String()]
	return has
}

func (trs *tableRecords) String() string {
	var buf bytes.Buffer
	for i, tr := range trs.list {
		buf.WriteString(fmt.Sprintf("Table record %d: %s offset=%d length=%d checksum=0x%08X\n",
			i+1, tr.Tag(), tr.Offset(), tr.Length(), tr.CheckSum()))
	}
	return buf.String()
}
