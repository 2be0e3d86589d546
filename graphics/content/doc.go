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

// Package content implements the page content stream of the summary
// document.
//
// A content stream is a sequence of PDF operators that describe the
// graphical elements to be painted on a page.  The only elements used here
// are positioned lines of text: every [Line] is rendered as a complete,
// self-contained text object
//
//	BT /F1 10 Tf 1 0 0 1 54 756 Tm (text) Tj ET
//
// so that lines do not depend on text state left behind by earlier lines.
// The font names refer to entries of the /Font resource dictionary of the
// page.
package content
