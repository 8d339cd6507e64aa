/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

// maxTables returns the effective numTables limit of `opts`.
func (opts ReadOptions) maxTables() int {
	switch {
	case opts.MaxTables <= 0:
		return DefaultMaxTables
	case opts.MaxTables > maxTablesFormat:
		return maxTablesFormat
	}
	return opts.MaxTables
}

// checkNumTables returns an InvalidDirectoryError if `numTables` is above the limit of `opts`.
func (opts ReadOptions) checkNumTables(numTables int) error {
	max := opts.maxTables()
	if numTables > max {
		off, _ := OffsetTableSchema.FieldOffset("numTables")
		return &InvalidDirectoryError{NumTables: numTables, MaxTables: max, Offset: int64(off)}
	}
	return nil
}

// SearchParams returns the searchRange, entrySelector and rangeShift values expected for
// `numTables` directory entries.
func SearchParams(numTables uint16) (searchRange, entrySelector, rangeShift uint16) {
	if numTables == 0 {
		return 0, 0, 0
	}
	for 1<<(entrySelector+1) <= int(numTables) {
		entrySelector++
	}
	searchRange = (1 << entrySelector) * tableRecordSize
	rangeShift = numTables*tableRecordSize - searchRange
	return searchRange, entrySelector, rangeShift
}

// SearchParamsConsistent reports whether the binary search fields of `ot` match its numTables.
// Readers do not enforce this; many fonts in the wild carry stale values.
func (ot OffsetTable) SearchParamsConsistent() bool {
	sr, es, rs := SearchParams(ot.NumTables())
	return ot.SearchRange() == sr && ot.EntrySelector() == es && ot.RangeShift() == rs
}
