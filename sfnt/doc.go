/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sfnt decodes the directory of sfnt (TrueType/OpenType) font files.
//
// Scalar data types (uint16, Fixed, LONGDATETIME, Tag, ...) are described by AtomType, each with
// a fixed byte width and a big-endian codec. Records are declared as a Schema, an ordered list of
// typed fields, and decoded into a Record by reading the fields in order. The Offset Table and
// the Table Records are two such schemas; ReadDirectory combines them into a Font.
//
// Only the directory is decoded. Table contents (glyf, cmap, ...) are left to the caller, who can
// use Font.TableSection to locate them.
package sfnt
