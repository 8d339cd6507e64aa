/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command sfntdump prints the table directory of a TrueType/OpenType font file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/unidoc/unisfnt/common"
	"github.com/unidoc/unisfnt/sfnt"
)

func main() {
	commando.
		SetExecutableName("sfntdump").
		SetVersion("v0.1.0").
		SetDescription("Print the Offset Table and table records of a TrueType/OpenType font file.")

	commando.
		Register(nil).
		AddArgument("font", "font file path", "").
		AddFlag("lang,l", "language of type descriptions (BCP 47, e.g. en, zh)", commando.String, "en").
		AddFlag("max-tables,m", "largest numTables accepted", commando.Int, sfnt.DefaultMaxTables).
		AddFlag("raw,r", "show the first bytes of every table", commando.Bool, nil).
		AddFlag("verbose,V", "display debug output", commando.Bool, nil).
		SetAction(runDump)

	commando.Parse(nil)
}

func runDump(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}

	verbose, err := flags["verbose"].GetBool()
	if err != nil {
		fatalf("invalid --verbose flag: %v", err)
	}
	if verbose {
		common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
	}

	langFlag, err := flags["lang"].GetString()
	if err != nil {
		fatalf("invalid --lang flag: %v", err)
	}
	lang, err := sfnt.ParseLanguage(strings.TrimSpace(langFlag))
	if err != nil {
		fatalf("invalid --lang flag: %v", err)
	}

	maxTables, err := flags["max-tables"].GetInt()
	if err != nil {
		fatalf("invalid --max-tables flag: %v", err)
	}
	raw, err := flags["raw"].GetBool()
	if err != nil {
		fatalf("invalid --raw flag: %v", err)
	}

	f, err := os.Open(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer f.Close()

	fnt, err := sfnt.ReadDirectoryWithOptions(f, sfnt.ReadOptions{MaxTables: maxTables})
	if err != nil {
		pterm.Error.Println(describeError(err))
		f.Close()
		os.Exit(1)
	}

	pterm.Printf("Path: %s\n", fontPath)
	pterm.Printf("Kind: %s\n", fnt.Kind())

	pterm.DefaultSection.Println("Offset Table")
	pterm.DefaultTable.WithHasHeader().WithData(recordRows(fnt.OffsetTable().Record)).Render()
	if !fnt.OffsetTable().SearchParamsConsistent() {
		sr, es, rs := sfnt.SearchParams(fnt.OffsetTable().NumTables())
		pterm.Warning.Printf("search parameters do not match numTables (expected %d/%d/%d)\n", sr, es, rs)
	}

	pterm.DefaultSection.Printf("Table Records (%d)\n", fnt.NumTables())
	pterm.DefaultTable.WithHasHeader().WithData(directoryRows(fnt)).Render()

	if raw {
		pterm.DefaultSection.Println("Table Data")
		for _, tr := range fnt.TableRecords() {
			head, err := tableHead(tr, f, 16)
			if err != nil {
				pterm.Error.Printf("%s: %v\n", tr.Tag(), err)
				continue
			}
			pterm.Printf("%-4s % X\n", tr.Tag(), head)
		}
	}

	pterm.DefaultSection.Println("Types")
	pterm.DefaultTable.WithHasHeader().WithData(typeRows(lang, sfnt.OffsetTableSchema, sfnt.TableRecordSchema)).Render()
}

// describeError returns the message shown for a decoding failure: its kind and byte offset.
func describeError(err error) string {
	var te *sfnt.TruncatedInputError
	var de *sfnt.InvalidDirectoryError
	switch {
	case errors.As(err, &te):
		return fmt.Sprintf("truncated input at offset %d: %v", te.Offset, err)
	case errors.As(err, &de):
		return fmt.Sprintf("invalid directory at offset %d: %v", de.Offset, err)
	}
	return err.Error()
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Printf(format+"\n", args...)
	os.Exit(1)
}
