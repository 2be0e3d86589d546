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

package layout

import (
	"errors"
	"math"
	"testing"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"github.com/google/go-cmp/cmp"
)

var testDoc = &Document{
	Title: "Title",
	Sections: []Section{
		{Heading: "First", Paragraph: "Some (short) text."},
		{Heading: "Second", Bullets: []string{"one", "two"}},
		{Heading: "Third"},
	},
}

func TestLayout(t *testing.T) {
	geom := DefaultGeometry()
	res, err := Layout(testDoc, geom)
	if err != nil {
		t.Fatal(err)
	}

	type pos struct {
		Text string
		X, Y float64
	}
	var got []pos
	for _, l := range res.Stream {
		got = append(got, pos{l.Text, l.X, l.Y})
	}
	want := []pos{
		{"Title", 54, 756},
		{"First", 54, 738},
		{`Some \(short\) text.`, 54, 724},
		{"Second", 54, 708}, // 724 - 12 - 4
		{"- one", 64, 694},
		{"- two", 64, 682},
		{"Third", 54, 666}, // 682 - 12 - 4
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong layout (-want +got):\n%s", d)
	}
	if res.Y != 652 {
		t.Errorf("wrong final cursor %g", res.Y)
	}
}

func TestLayoutOverflow(t *testing.T) {
	geom := DefaultGeometry()
	geom.Bottom = geom.Top + 1

	res, err := Layout(testDoc, geom)
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected OverflowError, got %v", err)
	}
	if res == nil || overflow.Y != res.Y || res.Y != 652 {
		t.Errorf("wrong final cursor in result %v / error %v", res, overflow)
	}
}

func TestLayoutEncodingError(t *testing.T) {
	doc := &Document{
		Title:    "Title",
		Sections: []Section{{Heading: "Heading", Bullets: []string{"ok", "→ not ok"}}},
	}
	_, err := Layout(doc, DefaultGeometry())
	var encErr *pdf.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if encErr.Rune != '→' {
		t.Errorf("wrong rune %U", encErr.Rune)
	}
}

func TestGeometryCheck(t *testing.T) {
	if err := DefaultGeometry().Check(); err != nil {
		t.Fatal(err)
	}

	cases := []func(g *Geometry){
		func(g *Geometry) { g.Right = g.Left },
		func(g *Geometry) { g.Body.Size = 0 },
		func(g *Geometry) { g.Heading.Leading = -1 },
		func(g *Geometry) { g.Title.Font = "" },
		func(g *Geometry) { g.SectionGap = math.Inf(1) },
	}
	for i, modify := range cases {
		g := DefaultGeometry()
		modify(g)
		if err := g.Check(); err == nil {
			t.Errorf("%d: invalid geometry accepted", i)
		}
		if _, err := Layout(testDoc, g); err == nil {
			t.Errorf("%d: layout with invalid geometry succeeded", i)
		}
	}
}
