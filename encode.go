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
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// EscapeString prepares s for use inside a PDF literal string "(...)" in a
// content stream.  Backslashes and parentheses are escaped, and every
// character is mapped to its single-byte ISO 8859-1 code, so that the
// length of the result equals the number of bytes it occupies in the file.
//
// If s contains a character outside ISO 8859-1, an [*EncodingError] is
// returned.
func EscapeString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for pos, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
			continue
		case '(':
			b.WriteString(`\(`)
			continue
		case ')':
			b.WriteString(`\)`)
			continue
		}
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return "", &EncodingError{Text: s, Rune: r, Pos: pos}
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
