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

package document

import (
	"errors"
	"fmt"
	"io"
	"slices"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"github.com/PatrizioAcquadro/WebsitePresentation/graphics/content"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

// Graph is the object graph of a document consisting of a single page.
//
// The objects are numbered in the order catalog, page tree, page, fonts
// (sorted by resource name), content stream.  With the two default fonts
// this gives the object numbers 1 to 6.
type Graph struct {
	Table *pdf.Table

	Catalog  pdf.Reference
	Pages    pdf.Reference
	Page     pdf.Reference
	Fonts    map[pdf.Name]pdf.Reference
	Contents pdf.Reference
}

// Build assembles the object graph for a page p showing the text in stream.
//
// All references between objects use the references handed out by the
// table, so the object numbers in the file always agree with the
// cross-reference table.
func Build(stream content.Stream, p *Page) (*Graph, error) {
	if !(p.MediaBox.Dx() > 0 && p.MediaBox.Dy() > 0) {
		return nil, errors.New("empty media box")
	}
	if len(p.Fonts) == 0 {
		return nil, errors.New("no fonts")
	}
	keys := maps.Keys(p.Fonts)
	slices.Sort(keys)
	for _, key := range keys {
		if !p.Fonts[key].IsValid() {
			return nil, fmt.Errorf("font %s: %q is not a standard font", key, p.Fonts[key])
		}
	}
	for i, l := range stream {
		if _, ok := p.Fonts[l.Font]; !ok {
			return nil, fmt.Errorf("line %d: undefined font %s", i+1, l.Font)
		}
	}

	t := &pdf.Table{}
	g := &Graph{
		Table:   t,
		Catalog: t.Alloc(),
		Pages:   t.Alloc(),
		Page:    t.Alloc(),
		Fonts:   make(map[pdf.Name]pdf.Reference, len(p.Fonts)),
	}

	fontDict := pdf.Dict{}
	for _, key := range keys {
		ref := t.Add(p.Fonts[key].Dict())
		g.Fonts[key] = ref
		fontDict[key] = ref
	}
	g.Contents = t.Add(pdf.NewStream(nil, stream.Bytes()))

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": g.Pages,
	}
	if p.Lang != language.Und {
		catalog["Lang"] = pdf.String(p.Lang.String())
	}
	pages := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{g.Page},
		"Count": pdf.Integer(1),
	}
	page := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    g.Pages,
		"MediaBox":  rectangle(p.MediaBox),
		"Resources": pdf.Dict{"Font": fontDict},
		"Contents":  g.Contents,
	}

	for _, obj := range []struct {
		ref  pdf.Reference
		dict pdf.Dict
	}{
		{g.Catalog, catalog},
		{g.Pages, pages},
		{g.Page, page},
	} {
		err := t.Set(obj.ref, obj.dict)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Write writes the complete PDF file for the graph to w.
func (g *Graph) Write(w io.Writer, opt *pdf.WriterOptions) error {
	return pdf.Write(w, pdf.V1_4, g.Table, g.Catalog, opt)
}

// WriteSinglePage builds the object graph for stream and p and writes the
// resulting PDF file to w.
func WriteSinglePage(w io.Writer, stream content.Stream, p *Page, opt *pdf.WriterOptions) error {
	g, err := Build(stream, p)
	if err != nil {
		return err
	}
	return g.Write(w, opt)
}
