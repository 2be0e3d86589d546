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
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// AvgGlyphWidth is the assumed average advance width of a glyph, as a
// fraction of the font size.
//
// The value is a heuristic for Helvetica and is not derived from the font
// metrics.  Real Helvetica text is on average somewhat narrower (lower-case
// prose runs close to 0.5), so lines are usually shorter than the available
// width; they can be longer for text with many capitals or digits.
const AvgGlyphWidth = 0.53

// MinChars is the lower bound for the number of characters per line.
const MinChars = 24

// MaxChars returns the maximal number of characters which fit into a line
// set in the given font size, starting at x = indent and ending at x = right.
func MaxChars(size, indent, right float64) int {
	usable := right - indent
	avg := size * AvgGlyphWidth
	n := math.Floor(usable / avg)
	if math.IsNaN(n) || n < MinChars {
		return MinChars
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Wrap breaks text into lines of at most MaxChars(size, indent, right)
// characters.
//
// Words are separated by runs of ASCII white space and are joined using
// single spaces.  Other space characters, like U+00A0 NO-BREAK SPACE, are
// part of the words they appear in.
// Words are never split, neither at hyphens nor otherwise: a word which is
// longer than the limit is placed on a line by itself.
// Text containing no words gives an empty sequence.
//
// The returned sequence is computed lazily and can be iterated repeatedly.
func Wrap(text string, size, indent, right float64) iter.Seq[string] {
	maxChars := MaxChars(size, indent, right)
	return func(yield func(string) bool) {
		var line strings.Builder
		lineLen := 0
		for _, word := range strings.FieldsFunc(text, isSpace) {
			wordLen := utf8.RuneCountInString(word)
			if lineLen > 0 && lineLen+1+wordLen > maxChars {
				if !yield(line.String()) {
					return
				}
				line.Reset()
				lineLen = 0
			}
			if lineLen > 0 {
				line.WriteByte(' ')
				lineLen++
			}
			line.WriteString(word)
			lineLen += wordLen
		}
		if lineLen > 0 {
			yield(line.String())
		}
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
