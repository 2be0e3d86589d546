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
	"math"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"github.com/PatrizioAcquadro/WebsitePresentation/font/standard"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
)

// Page describes the single page of a document.
type Page struct {
	// MediaBox is the visible area of the page.
	MediaBox rect.Rect

	// Fonts maps the font names used in the content stream
	// to standard fonts.
	Fonts map[pdf.Name]standard.Font

	// Lang, if not language.Und, is the natural language of the text.
	Lang language.Tag
}

// DefaultFonts maps the font names F1 and F2 to Helvetica and
// Helvetica-Bold.
func DefaultFonts() map[pdf.Name]standard.Font {
	return map[pdf.Name]standard.Font{
		"F1": standard.Helvetica,
		"F2": standard.HelveticaBold,
	}
}

// rectangle converts r into a PDF rectangle, rounded to two decimal places.
func rectangle(r rect.Rect) pdf.Array {
	res := pdf.Array{}
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		x = math.Round(100*x) / 100
		res = append(res, pdf.Number(x))
	}
	return res
}
