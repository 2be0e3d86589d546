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

// Table is the ordered list of indirect objects of a PDF file.
//
// Object numbers are handed out by Alloc and Add in insertion order,
// starting at 1, so the numbers in a table are always contiguous.
// Objects may refer to each other before they are stored, by allocating
// the references first and filling in the objects later using Set.
type Table struct {
	objects []Object
	set     []bool
}

// Alloc reserves the next object number.  An object must be stored under
// the returned reference using Set before the table is written.
func (t *Table) Alloc() Reference {
	t.objects = append(t.objects, nil)
	t.set = append(t.set, false)
	return NewReference(len(t.objects), 0)
}

// Add appends obj to the table and returns its reference.
func (t *Table) Add(obj Object) Reference {
	ref := t.Alloc()
	t.objects[ref.Number-1] = obj
	t.set[ref.Number-1] = true
	return ref
}

// Set stores obj under a reference previously returned by Alloc.
func (t *Table) Set(ref Reference, obj Object) error {
	idx := ref.Number - 1
	if ref.Generation != 0 || idx < 0 || idx >= len(t.objects) {
		return &ObjectError{Ref: ref, Err: errUnknownRef}
	}
	if t.set[idx] {
		return &ObjectError{Ref: ref, Err: ErrDuplicateObject}
	}
	t.objects[idx] = obj
	t.set[idx] = true
	return nil
}

// Get returns the object stored under ref, or nil if there is none.
func (t *Table) Get(ref Reference) Object {
	idx := ref.Number - 1
	if ref.Generation != 0 || idx < 0 || idx >= len(t.objects) {
		return nil
	}
	return t.objects[idx]
}

// Len returns the number of objects in the table.
func (t *Table) Len() int {
	return len(t.objects)
}

// Check verifies that every allocated object number has been set.
func (t *Table) Check() error {
	for i, ok := range t.set {
		if !ok {
			return &ObjectError{Ref: NewReference(i+1, 0), Err: ErrUnsetObject}
		}
	}
	return nil
}
