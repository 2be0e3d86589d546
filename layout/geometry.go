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

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
)

// Style describes how a line of text is set.
type Style struct {
	// Font is the font resource name, e.g. "F1".
	Font pdf.Name

	// Size is the font size.
	Size float64

	// Leading is the distance between consecutive baselines.
	Leading float64
}

// Geometry holds the page layout parameters.
// All lengths are in PDF units (1/72 inch).
type Geometry struct {
	// Left and Right are the horizontal text margins, measured from the
	// left edge of the page.  Text is wrapped so that it ends at Right.
	Left, Right float64

	// Top is the baseline of the first line.  Bottom is the lowest
	// admissible position of the layout cursor after the last line.
	Top, Bottom float64

	// SectionGap is the extra vertical space between two sections.
	SectionGap float64

	// BulletIndent is the indentation of bullet items, relative to Left.
	BulletIndent float64

	// Continuation is the extra indentation of the second and subsequent
	// lines of a bullet item.
	Continuation float64

	Title   Style
	Heading Style
	Body    Style
}

// Font resource names used by DefaultGeometry.
const (
	RegularFont pdf.Name = "F1"
	BoldFont    pdf.Name = "F2"
)

// DefaultGeometry returns the layout of the summary page: US Letter paper
// with margins of 54 units at the left and right and of 36/42 units at the
// top and bottom.
func DefaultGeometry() *Geometry {
	return &Geometry{
		Left:         54,
		Right:        558,
		Top:          756,
		Bottom:       42,
		SectionGap:   4,
		BulletIndent: 10,
		Continuation: 10,

		Title:   Style{Font: BoldFont, Size: 16, Leading: 18},
		Heading: Style{Font: BoldFont, Size: 12, Leading: 14},
		Body:    Style{Font: RegularFont, Size: 10, Leading: 12},
	}
}

// Check verifies that the geometry can be used for layout.
//
// Check does not compare Top and Bottom: a page which cannot hold the
// content is reported by Layout as an [OverflowError].
func (g *Geometry) Check() error {
	for _, x := range []float64{g.Left, g.Right, g.Top, g.Bottom,
		g.SectionGap, g.BulletIndent, g.Continuation} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errInvalidGeometry
		}
	}
	if g.Right <= g.Left {
		return errors.New("right margin must be to the right of the left margin")
	}
	for _, s := range []Style{g.Title, g.Heading, g.Body} {
		if s.Font == "" {
			return errors.New("missing font name")
		}
		if !(s.Size > 0) || math.IsInf(s.Size, 0) {
			return errors.New("font size must be positive")
		}
		if !(s.Leading >= 0) || math.IsInf(s.Leading, 0) {
			return errors.New("leading must not be negative")
		}
	}
	return nil
}

var errInvalidGeometry = errors.New("invalid layout geometry")
