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
	"strconv"
)

var (
	errVersion = errors.New("unsupported PDF version")

	// ErrUnsetObject is returned when an object number was allocated
	// in a Table, but no object was stored under this number.
	ErrUnsetObject = errors.New("allocated object was never set")

	// ErrDuplicateObject is returned when an object is stored twice
	// under the same object number.
	ErrDuplicateObject = errors.New("object already set")

	errUnknownRef = errors.New("reference not allocated in this table")

	// ErrClosed is returned when a Writer is used after Close.
	ErrClosed = errors.New("writer already closed")
)

// EncodingError is returned when a text string contains a character which
// cannot be represented in the single-byte encoding used for content streams.
type EncodingError struct {
	Text string
	Rune rune
	Pos  int // byte offset of Rune within Text
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %U %s at byte %d of %q",
		err.Rune, strconv.QuoteRune(err.Rune), err.Pos, err.Text)
}

// ObjectError reports a problem with a specific object of a Table.
type ObjectError struct {
	Ref Reference
	Err error
}

func (err *ObjectError) Error() string {
	return "object " + strconv.Itoa(err.Ref.Number) + ": " + err.Err.Error()
}

func (err *ObjectError) Unwrap() error {
	return err.Err
}

// MalformedFileError indicates that a PDF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
