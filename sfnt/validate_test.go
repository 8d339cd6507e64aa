/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unidoc/unisfnt/common"
)

func init() {
	//common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

func TestSearchParams(t *testing.T) {
	testcases := []struct {
		numTables     uint16
		searchRange   uint16
		entrySelector uint16
		rangeShift    uint16
	}{
		{0, 0, 0, 0},
		{1, 16, 0, 0},
		{4, 64, 2, 0},
		{9, 128, 3, 16},
		{15, 128, 3, 112},
		{16, 256, 4, 0},
		{18, 256, 4, 32},
	}

	for _, tcase := range testcases {
		sr, es, rs := SearchParams(tcase.numTables)
		assert.Equal(t, tcase.searchRange, sr, "numTables %d", tcase.numTables)
		assert.Equal(t, tcase.entrySelector, es, "numTables %d", tcase.numTables)
		assert.Equal(t, tcase.rangeShift, rs, "numTables %d", tcase.numTables)
	}
}

func TestReadOptionsMaxTables(t *testing.T) {
	assert.Equal(t, DefaultMaxTables, ReadOptions{}.maxTables())
	assert.Equal(t, DefaultMaxTables, ReadOptions{MaxTables: -1}.maxTables())
	assert.Equal(t, 10, ReadOptions{MaxTables: 10}.maxTables())
	assert.Equal(t, 0xFFFF, ReadOptions{MaxTables: 70000}.maxTables())

	assert.NoError(t, ReadOptions{MaxTables: 10}.checkNumTables(10))
	assert.Error(t, ReadOptions{MaxTables: 10}.checkNumTables(11))
}
