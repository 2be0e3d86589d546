// WebsitePresentation - a hand-assembled one-page PDF summary
// Copyright (C) 2026  The WebsitePresentation Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pdf implements the low-level parts needed to assemble a PDF file
// by hand.
//
// The native PDF object types are represented by Go types which all
// implement the [Object] interface:
//
//	Array
//	Dict
//	Integer
//	Name
//	Number
//	Reference
//	Stream
//	String
//
// Indirect objects are collected in a [Table], which hands out object
// numbers in insertion order.  A [Writer] serialises the objects one after
// another, records the byte offset of each object, and finishes the file
// with a cross-reference table and a trailer:
//
//	t := &pdf.Table{}
//	catalog := t.Alloc()
//	pages := t.Alloc()
//	... fill in the objects using t.Set() ...
//
//	buf := &bytes.Buffer{}
//	err := pdf.Write(buf, pdf.V1_4, t, catalog, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Subpackages implement the fonts, content streams, layout and page graph
// used to produce the one-page summary document.
package pdf
