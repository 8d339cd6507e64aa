/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"

	"github.com/unidoc/unisfnt/sfnt"
)

// recordRows lists name, type, value and description of every field of `rec`.
func recordRows(rec *sfnt.Record) [][]string {
	data := [][]string{
		{"Field", "Type", "Value", "Description"},
	}
	for i := 0; i < rec.Len(); i++ {
		f, v := rec.At(i)
		data = append(data, []string{f.Name, f.Type.String(), formatValue(f.Name, v), f.Description})
	}
	return data
}

func formatValue(name string, v sfnt.Value) string {
	if u, ok := v.(sfnt.Uint32); ok && name == "sfntVersion" {
		return fmt.Sprintf("0x%08X", uint32(u))
	}
	return v.String()
}

func directoryRows(fnt *sfnt.Font) [][]string {
	data := [][]string{
		{"#", "Tag", "CheckSum", "Offset", "Length"},
	}
	for i, tr := range fnt.TableRecords() {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			tr.Tag().String(),
			fmt.Sprintf("0x%08X", tr.CheckSum()),
			fmt.Sprintf("%d", tr.Offset()),
			fmt.Sprintf("%d", tr.Length()),
		})
	}
	return data
}

// typeRows lists the atom types used by `schemas`, in order of first use.
func typeRows(lang language.Tag, schemas ...*sfnt.Schema) [][]string {
	data := [][]string{
		{"Type", "Size", "Description"},
	}
	seen := map[sfnt.AtomType]bool{}
	for _, s := range schemas {
		for _, f := range s.Fields() {
			if seen[f.Type] {
				continue
			}
			seen[f.Type] = true
			data = append(data, []string{f.Type.String(), fmt.Sprintf("%d", f.Type.Size()), f.Type.DescriptionIn(lang)})
		}
	}
	return data
}

// tableHead returns up to `n` bytes from the start of the table of `tr`.
func tableHead(tr sfnt.TableRecord, ra io.ReaderAt, n int) ([]byte, error) {
	b := make([]byte, n)
	k, err := io.ReadFull(tr.Section(ra), b)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	return b[:k], err
}
