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

import "bytes"

// Stream is the content stream of a page.  Lines are drawn in order.
type Stream []Line

// Append adds a line at the end of the stream.
func (s *Stream) Append(l Line) {
	*s = append(*s, l)
}

// Bytes returns the encoded content stream: the operators of all lines,
// separated by newlines.  Since the text of every line is stored in its
// single-byte form, the length of the result is the /Length of the stream.
func (s Stream) Bytes() []byte {
	buf := &bytes.Buffer{}
	for i, l := range s {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l.Op())
	}
	return buf.Bytes()
}
