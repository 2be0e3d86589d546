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

// Package summary generates the one-page summary document.
//
// The text of the summary is compiled into the program.  [Generate] lays
// it out on a single US Letter page and assembles the PDF file in memory,
// [WriteFile] additionally stores the result on disk.
package summary

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"

	pdf "github.com/PatrizioAcquadro/WebsitePresentation"
	"github.com/PatrizioAcquadro/WebsitePresentation/document"
	"github.com/PatrizioAcquadro/WebsitePresentation/layout"
	"github.com/PatrizioAcquadro/WebsitePresentation/logging"
	"github.com/google/uuid"
	"seehuhn.de/go/geom/rect"
)

// OutputPath is the default location of the generated file,
// relative to the working directory.
const OutputPath = "output/pdf/app-summary-one-page.pdf"

//go:embed content.yaml
var defaultContent []byte

// idSpace is the name space for the file identifiers of generated documents.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL,
	[]byte("https://github.com/PatrizioAcquadro/WebsitePresentation"))

// Options can be used to override the defaults of [Generate] and [WriteFile].
// The zero value selects the defaults for all fields.
type Options struct {
	// Geometry describes the page layout.
	// If nil, [layout.DefaultGeometry] is used.
	Geometry *layout.Geometry

	// MediaBox is the page size.  If zero, [document.Letter] is used.
	MediaBox rect.Rect

	// Path is the output file for WriteFile.  If empty, [OutputPath] is used.
	Path string

	// Content is the text of the summary.
	// If nil, the compiled-in content is used.
	Content *Content
}

// Output is a generated summary document.
type Output struct {
	// Data is the complete PDF file.
	Data []byte

	// Y is the final position of the layout cursor.
	Y float64

	// Lines is the number of text lines on the page.
	Lines int
}

// Generate lays out the summary and assembles the PDF file.
//
// If the content does not fit on the page, a [*layout.OverflowError] is
// returned.  Text which cannot be represented in the single-byte encoding
// of the standard fonts leads to a [*pdf.EncodingError].
func Generate(opt *Options) (*Output, error) {
	if opt == nil {
		opt = &Options{}
	}
	log := logging.Logger()

	c := opt.Content
	if c == nil {
		var err error
		c, err = DefaultContent()
		if err != nil {
			return nil, err
		}
	}
	geom := opt.Geometry
	if geom == nil {
		geom = layout.DefaultGeometry()
	}

	res, err := layout.Layout(&c.Document, geom)
	if err != nil {
		return nil, err
	}
	log.Debug("layout done", "lines", len(res.Stream), "y", res.Y)

	page := &document.Page{
		MediaBox: opt.MediaBox,
		Fonts:    document.DefaultFonts(),
		Lang:     c.Lang,
	}
	if page.MediaBox == (rect.Rect{}) {
		page.MediaBox = document.Letter
	}
	g, err := document.Build(res.Stream, page)
	if err != nil {
		return nil, err
	}

	id := uuid.NewSHA1(idSpace, res.Stream.Bytes())
	wOpt := &pdf.WriterOptions{
		ID: [][]byte{id[:], id[:]},
	}
	buf := &bytes.Buffer{}
	err = g.Write(buf, wOpt)
	if err != nil {
		return nil, err
	}
	log.Debug("document assembled",
		"objects", g.Table.Len(), "bytes", buf.Len(), "id", id.String())

	out := &Output{
		Data:  buf.Bytes(),
		Y:     res.Y,
		Lines: len(res.Stream),
	}
	return out, nil
}

// WriteFile generates the summary and writes it to the output file,
// creating parent directories as needed.  The absolute path of the file is
// returned.
//
// Nothing is written if the document cannot be generated.  Errors from the
// file system are returned unchanged.
func WriteFile(opt *Options) (string, *Output, error) {
	if opt == nil {
		opt = &Options{}
	}

	out, err := Generate(opt)
	if err != nil {
		return "", nil, err
	}

	fname := opt.Path
	if fname == "" {
		fname = OutputPath
	}
	fname, err = filepath.Abs(fname)
	if err != nil {
		return "", nil, err
	}
	err = os.MkdirAll(filepath.Dir(fname), 0o755)
	if err != nil {
		return "", nil, err
	}
	err = os.WriteFile(fname, out.Data, 0o644)
	if err != nil {
		return "", nil, err
	}
	logging.Logger().Debug("file written", "path", fname, "bytes", len(out.Data))

	return fname, out, nil
}
