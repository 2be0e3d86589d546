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
	"fmt"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"github.com/PatrizioAcquadro/WebsitePresentation/graphics/content"
)

// Engine places lines of text on a page, from top to bottom.
//
// The engine keeps a layout cursor Y, the baseline of the next line.
// Every emit method places its lines at the cursor, moves the cursor
// down, and returns the new cursor position.  The cursor can move below
// the bottom margin: use [Engine.Fits] to check whether everything emitted
// so far fits on the page.
type Engine struct {
	// Y is the baseline of the next line.
	Y float64

	geom   *Geometry
	stream content.Stream
}

// NewEngine returns an engine with the cursor at the top margin.
func NewEngine(geom *Geometry) *Engine {
	return &Engine{
		Y:    geom.Top,
		geom: geom,
	}
}

// Line emits a single line of text at horizontal position x.
// The text must not contain characters outside ISO 8859-1; otherwise
// a [*pdf.EncodingError] is returned and nothing is emitted.
func (e *Engine) Line(text string, x float64, style Style) (float64, error) {
	safe, err := pdf.EscapeString(text)
	if err != nil {
		return e.Y, err
	}
	e.stream.Append(content.Line{
		Text:    safe,
		X:       x,
		Y:       e.Y,
		Font:    style.Font,
		Size:    style.Size,
		Leading: style.Leading,
	})
	e.Y -= style.Leading
	return e.Y, nil
}

// Heading emits a section heading at the left margin.
func (e *Engine) Heading(text string) (float64, error) {
	return e.Line(text, e.geom.Left, e.geom.Heading)
}

// Paragraph wraps text and emits the resulting lines at x = indent.
func (e *Engine) Paragraph(text string, indent float64, style Style) (float64, error) {
	for segment := range Wrap(text, style.Size, indent, e.geom.Right) {
		_, err := e.Line(segment, indent, style)
		if err != nil {
			return e.Y, err
		}
	}
	return e.Y, nil
}

// Bullets emits a bulleted list.  Every item is prefixed with "- " and
// wrapped; the first line of an item starts at x = indent, continuation
// lines are indented by the Continuation width of the geometry.
//
// Continuation lines are wrapped with the same limit as the first line.
func (e *Engine) Bullets(items []string, indent float64, style Style) (float64, error) {
	continuation := indent + e.geom.Continuation
	for _, item := range items {
		first := true
		for segment := range Wrap("- "+item, style.Size, indent, e.geom.Right) {
			x := continuation
			if first {
				x = indent
				first = false
			}
			_, err := e.Line(segment, x, style)
			if err != nil {
				return e.Y, err
			}
		}
	}
	return e.Y, nil
}

// Gap moves the cursor down by dy without emitting anything.
func (e *Engine) Gap(dy float64) float64 {
	e.Y -= dy
	return e.Y
}

// Stream returns the lines emitted so far.
func (e *Engine) Stream() content.Stream {
	return append(content.Stream(nil), e.stream...)
}

// Fits checks whether the cursor is still at or above the bottom margin.
// If not, an [*OverflowError] is returned.
func (e *Engine) Fits() error {
	if e.Y < e.geom.Bottom {
		return &OverflowError{Y: e.Y, Bottom: e.geom.Bottom}
	}
	return nil
}

// OverflowError indicates that the content does not fit on the page.
type OverflowError struct {
	// Y is the final position of the layout cursor.
	Y float64

	// Bottom is the bottom margin of the page.
	Bottom float64
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("layout overflowed the page (y=%.2f, bottom margin %g)",
		err.Y, err.Bottom)
}
