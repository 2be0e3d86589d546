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

package pdf

import (
	"errors"
	"fmt"
	"io"
)

// WriterOptions allows to influence the output of a Writer.
type WriterOptions struct {
	// ID, if non-nil, is written as the file identifier (/ID) in the
	// trailer.  It must consist of exactly two byte strings.
	ID [][]byte
}

// Writer represents a PDF file open for writing.
//
// Objects are written sequentially.  For every object, the Writer records
// the byte offset at which the object starts, and Close uses this
// information to write the cross-reference table and the trailer.
type Writer struct {
	// Version is the PDF version given in the file header.
	Version Version

	w       *posWriter
	xref    map[int]*xRefEntry
	nextRef int
	id      [][]byte
}

// NewWriter prepares a PDF file for writing and writes the file header.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &WriterOptions{}
	}
	if opt.ID != nil && len(opt.ID) != 2 {
		return nil, errors.New("invalid file identifier")
	}

	pdf := &Writer{
		Version: ver,

		w:       &posWriter{w: w},
		xref:    make(map[int]*xRefEntry),
		nextRef: 1,
		id:      opt.ID,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n", versionString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// WriteIndirect writes an object to the PDF file, as an indirect object.  If
// ref is the zero Reference, a new object number is allocated.  The returned
// reference can be used to refer to this object from other parts of the
// file.
func (pdf *Writer) WriteIndirect(obj Object, ref Reference) (Reference, error) {
	if pdf.w == nil {
		return Reference{}, ErrClosed
	}

	if ref.IsZero() {
		ref = pdf.Alloc()
	} else if ref.Number < 0 || ref.Number >= pdf.nextRef {
		return Reference{}, &ObjectError{Ref: ref, Err: errUnknownRef}
	} else if _, seen := pdf.xref[ref.Number]; seen {
		return Reference{}, &ObjectError{Ref: ref, Err: ErrDuplicateObject}
	}

	// The offset is taken immediately before the object header is written.
	pos := pdf.w.pos

	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	if err != nil {
		return Reference{}, err
	}
	if obj == nil {
		_, err = pdf.w.Write([]byte("null"))
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return Reference{}, err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return Reference{}, err
	}

	pdf.xref[ref.Number] = &xRefEntry{Pos: pos, Generation: ref.Generation}

	return ref, nil
}

// Close writes the cross-reference table and the trailer, naming root as
// the document catalog.  If the underlying io.Writer has a Close() method,
// it is closed as well.
func (pdf *Writer) Close(root Reference) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if root.IsZero() {
		return errors.New("missing /Catalog")
	}
	for i := 1; i < pdf.nextRef; i++ {
		if pdf.xref[i] == nil {
			return &ObjectError{Ref: NewReference(i, 0), Err: ErrUnsetObject}
		}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": root,
	}
	if pdf.id != nil {
		trailer["ID"] = Array{hexString(pdf.id[0]), hexString(pdf.id[1])}
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	closer, ok := pdf.w.w.(io.Closer)
	pdf.w = nil
	if ok {
		return closer.Close()
	}
	return nil
}

// Write serialises all objects of t, in the order of their object numbers,
// and names root as the document catalog.
func Write(w io.Writer, ver Version, t *Table, root Reference, opt *WriterOptions) error {
	err := t.Check()
	if err != nil {
		return err
	}
	if root.IsZero() || t.Get(root) == nil {
		return &ObjectError{Ref: root, Err: errUnknownRef}
	}

	pdf, err := NewWriter(w, ver, opt)
	if err != nil {
		return err
	}
	// Both the table and the writer number objects from 1 in insertion
	// order, so the freshly allocated references agree with t's.
	for _, obj := range t.objects {
		_, err = pdf.WriteIndirect(obj, pdf.Alloc())
		if err != nil {
			return err
		}
	}
	return pdf.Close(root)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

// hexString is a string which is always written in hexadecimal form.
type hexString []byte

func (x hexString) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%x>", []byte(x))
	return err
}
