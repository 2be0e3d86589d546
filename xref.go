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
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// xRefEntry records where an object starts in the output file.
type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// The free entry heading the table.  It links object 0 into the list of
// free objects and uses the maximal generation number.
const xRefFree = "0000000000 65535 f \n"

// writeXRefTable writes a classic cross-reference table with a single
// subsection, followed by the trailer dictionary.  Every entry is exactly
// 20 bytes long, including the two-byte end-of-line marker " \n".
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte(xRefFree))
	if err != nil {
		return err
	}
	for i := 1; i < pdf.nextRef; i++ {
		entry := pdf.xref[i]
		_, err = fmt.Fprintf(pdf.w, "%010d %05d n \n", entry.Pos, entry.Generation)
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

// XRefInfo describes the cross-reference section at the end of a PDF file.
type XRefInfo struct {
	// StartXRef is the offset given after the "startxref" keyword.
	StartXRef int64

	// Offsets[i] is the byte offset of object i+1.
	Offsets []int64

	// Trailer is the text of the trailer dictionary.
	Trailer string
}

// ReadXRef locates and decodes a classic cross-reference table in data,
// as written by [Writer.Close].  Only a single subsection starting at
// object 0 is supported.  ReadXRef checks that every in-use entry points
// at the header of the object with the corresponding number.
func ReadXRef(data []byte) (*XRefInfo, error) {
	pos := bytes.LastIndex(data, []byte("startxref"))
	if pos < 0 {
		return nil, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	fields := bytes.Fields(data[pos+9:])
	if len(fields) < 2 || !bytes.Equal(fields[1], []byte("%%EOF")) {
		return nil, &MalformedFileError{Pos: int64(pos), Err: errors.New("missing %%EOF")}
	}
	start, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil || start <= 0 || start >= int64(pos) {
		return nil, &MalformedFileError{Pos: int64(pos), Err: errors.New("invalid xref position")}
	}
	info := &XRefInfo{StartXRef: start}

	s := data[start:pos]
	if !bytes.HasPrefix(s, []byte("xref\n")) {
		return nil, &MalformedFileError{Pos: start, Err: errors.New("xref keyword not found")}
	}
	s = s[5:]
	eol := bytes.IndexByte(s, '\n')
	if eol < 0 {
		return nil, &MalformedFileError{Pos: start, Err: errors.New("truncated xref table")}
	}
	var first, count int
	header := bytes.Fields(s[:eol])
	if len(header) == 2 {
		first, err = strconv.Atoi(string(header[0]))
		if err == nil {
			count, err = strconv.Atoi(string(header[1]))
		}
	}
	if len(header) != 2 || err != nil || first != 0 || count < 1 {
		return nil, &MalformedFileError{Pos: start, Err: fmt.Errorf("invalid subsection header %q", s[:eol])}
	}
	s = s[eol+1:]
	if len(s) < 20*count {
		return nil, &MalformedFileError{Pos: start, Err: errors.New("truncated xref table")}
	}
	if string(s[:20]) != xRefFree {
		return nil, &MalformedFileError{Pos: start, Err: errors.New("first entry is not the free entry")}
	}
	for i := 1; i < count; i++ {
		entry := s[20*i : 20*i+20]
		off, err1 := strconv.ParseInt(string(entry[0:10]), 10, 64)
		gen, err2 := strconv.Atoi(string(entry[11:16]))
		if err1 != nil || err2 != nil || entry[10] != ' ' || entry[16] != ' ' ||
			entry[17] != 'n' || entry[18] != ' ' || entry[19] != '\n' {
			return nil, &MalformedFileError{Pos: start, Err: fmt.Errorf("malformed entry %q", entry)}
		}
		if off < 0 || off >= start {
			return nil, &MalformedFileError{Pos: start, Err: fmt.Errorf("object %d: offset %d out of range", i, off)}
		}
		objHeader := fmt.Sprintf("%d %d obj", i, gen)
		if !bytes.HasPrefix(data[off:], []byte(objHeader)) {
			return nil, &MalformedFileError{Pos: off, Err: fmt.Errorf("object %d not found at xref offset", i)}
		}
		info.Offsets = append(info.Offsets, off)
	}

	s = s[20*count:]
	if !bytes.HasPrefix(s, []byte("trailer\n")) {
		return nil, &MalformedFileError{Pos: start, Err: errors.New("trailer not found")}
	}
	info.Trailer = string(bytes.TrimSpace(s[8:]))

	return info, nil
}
