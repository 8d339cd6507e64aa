/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

// OffsetTableSchema is the layout of the sfnt Offset Table (12 bytes).
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#organization-of-an-opentype-font
var OffsetTableSchema = MustSchema("OffsetTable",
	Field{TypeUint32, "sfntVersion", "0x00010000 for TrueType outlines, 0x4F54544F ('OTTO') if containing CFF data"},
	Field{TypeUint16, "numTables", "Number of tables"},
	Field{TypeUint16, "searchRange", "2**floor(log2(numTables)) * 16"},
	Field{TypeUint16, "entrySelector", "floor(log2(numTables))"},
	Field{TypeUint16, "rangeShift", "numTables*16 - searchRange"},
)

// OffsetTable is a decoded Offset Table record.
type OffsetTable struct {
	*Record
}

func (ot OffsetTable) uint(name string) uint64 {
	v, _ := ot.Uint(name)
	return v
}

// SfntVersion returns the sfntVersion field.
func (ot OffsetTable) SfntVersion() uint32 {
	return uint32(ot.uint("sfntVersion"))
}

// NumTables returns the number of table records that follow the Offset Table.
func (ot OffsetTable) NumTables() uint16 {
	return uint16(ot.uint("numTables"))
}

// SearchRange returns the searchRange field.
func (ot OffsetTable) SearchRange() uint16 {
	return uint16(ot.uint("searchRange"))
}

// EntrySelector returns the entrySelector field.
func (ot OffsetTable) EntrySelector() uint16 {
	return uint16(ot.uint("entrySelector"))
}

// RangeShift returns the rangeShift field.
func (ot OffsetTable) RangeShift() uint16 {
	return uint16(ot.uint("rangeShift"))
}

func (f *Font) parseOffsetTable(r *byteReader) (OffsetTable, error) {
	rec, err := OffsetTableSchema.decode(r)
	if err != nil {
		return OffsetTable{}, err
	}
	return OffsetTable{Record: rec}, nil
}

func (f *Font) writeOffsetTable(w *byteWriter) error {
	if f.ot.Record == nil {
		return errRequiredField
	}
	return OffsetTableSchema.encode(w, f.ot.Record)
}
