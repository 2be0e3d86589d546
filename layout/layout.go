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

	"github.com/PatrizioAcquadro/WebsitePresentation/graphics/content"
)

// Document is the content of the page: a title followed by a sequence of
// sections.
type Document struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section is a heading, followed by an optional paragraph and an optional
// list of bullet items.
type Section struct {
	Heading   string   `yaml:"heading"`
	Paragraph string   `yaml:"paragraph,omitempty"`
	Bullets   []string `yaml:"bullets,omitempty"`
}

// Result is the outcome of laying out a document.
type Result struct {
	// Stream contains the emitted lines, in drawing order.
	Stream content.Stream

	// Y is the final position of the layout cursor.
	Y float64
}

// Layout places the document on a single page.
//
// The title is set at the top margin, followed by the sections.  Consecutive
// sections are separated by SectionGap.  Bullet lists are indented by
// BulletIndent.  If the final cursor position lies below the bottom margin,
// an [*OverflowError] is returned together with the result, so that the
// caller can report the final cursor position.  The content is never split
// across pages and the font size is never reduced.
func Layout(doc *Document, geom *Geometry) (*Result, error) {
	err := geom.Check()
	if err != nil {
		return nil, err
	}

	e := NewEngine(geom)
	_, err = e.Line(doc.Title, geom.Left, geom.Title)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	for i, sec := range doc.Sections {
		if i > 0 {
			e.Gap(geom.SectionGap)
		}
		_, err = e.Heading(sec.Heading)
		if err == nil && sec.Paragraph != "" {
			_, err = e.Paragraph(sec.Paragraph, geom.Left, geom.Body)
		}
		if err == nil && len(sec.Bullets) > 0 {
			_, err = e.Bullets(sec.Bullets, geom.Left+geom.BulletIndent, geom.Body)
		}
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.Heading, err)
		}
	}

	res := &Result{
		Stream: e.Stream(),
		Y:      e.Y,
	}
	if err := e.Fits(); err != nil {
		return res, err
	}
	return res, nil
}
