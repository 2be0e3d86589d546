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

import "strconv"

// Version is the PDF version given in the file header.
type Version int

// PDF versions which can be written.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// ToString returns the header form of ver, e.g. "1.4".
// An error is returned for unknown versions.
func (ver Version) ToString() (string, error) {
	switch {
	case ver >= V1_0 && ver <= V1_7:
		return "1." + strconv.Itoa(int(ver-V1_0)), nil
	case ver == V2_0:
		return "2.0", nil
	default:
		return "", errVersion
	}
}
