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

package content

import (
	"math"
	"strings"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"seehuhn.de/go/geom/matrix"
)

// Line is one line of text, placed on the page.
// Lines are immutable once created.
type Line struct {
	// Text is the line content, already escaped for use in a PDF literal
	// string and encoded using one byte per character (see
	// [pdf.EscapeString]).
	Text string

	// X and Y give the start of the baseline.
	X, Y float64

	// Font is the name of the font in the page's /Font resource dictionary.
	Font pdf.Name

	// Size is the font size.
	Size float64

	// Leading is the vertical distance to the next line.
	Leading float64
}

// TextMatrix returns the text matrix which places the line on the page.
func (l Line) TextMatrix() matrix.Matrix {
	return matrix.Translate(l.X, l.Y)
}

// Op returns the content stream operators which draw the line.
func (l Line) Op() string {
	M := l.TextMatrix()

	var b strings.Builder
	b.WriteString("BT ")
	b.WriteString(format(l.Font))
	b.WriteString(" ")
	b.WriteString(coord(l.Size))
	b.WriteString(" Tf")
	for _, x := range M {
		b.WriteString(" ")
		b.WriteString(coord(x))
	}
	b.WriteString(" Tm (")
	b.WriteString(l.Text)
	b.WriteString(") Tj ET")
	return b.String()
}

// coord formats a coordinate, keeping two decimal places.
func coord(x float64) string {
	return pdf.FormatNumber(math.Round(100*x) / 100)
}

func format(name pdf.Name) string {
	b := &strings.Builder{}
	_ = name.PDF(b) // writing to a strings.Builder cannot fail
	return b.String()
}
