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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTestTable(t *testing.T, opt *WriterOptions) ([]byte, *Table) {
	t.Helper()

	tab := &Table{}
	catalog := tab.Alloc()
	pages := tab.Alloc()
	page := tab.Alloc()
	font := tab.Add(Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name("Helvetica"),
	})
	contents := tab.Add(NewStream(nil, []byte("BT /F1 24 Tf 1 0 0 1 30 30 Tm (Hello World) Tj ET")))

	sets := []struct {
		ref Reference
		obj Object
	}{
		{catalog, Dict{"Type": Name("Catalog"), "Pages": pages}},
		{pages, Dict{"Type": Name("Pages"), "Kids": Array{page}, "Count": Integer(1)}},
		{page, Dict{
			"Type":      Name("Page"),
			"Parent":    pages,
			"MediaBox":  Array{Integer(0), Integer(0), Integer(200), Integer(100)},
			"Resources": Dict{"Font": Dict{"F1": font}},
			"Contents":  contents,
		}},
	}
	for _, s := range sets {
		err := tab.Set(s.ref, s.obj)
		if err != nil {
			t.Fatal(err)
		}
	}

	out := &bytes.Buffer{}
	err := Write(out, V1_4, tab, catalog, opt)
	if err != nil {
		t.Fatal(err)
	}
	return out.Bytes(), tab
}

func TestWriteXRef(t *testing.T) {
	data, tab := writeTestTable(t, nil)

	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Errorf("wrong header %q", data[:9])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Errorf("wrong end of file %q", data[len(data)-6:])
	}

	info, err := ReadXRef(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Offsets) != tab.Len() {
		t.Errorf("xref has %d objects, table has %d", len(info.Offsets), tab.Len())
	}
	for i, off := range info.Offsets {
		header := fmt.Sprintf("%d 0 obj\n", i+1)
		if !bytes.HasPrefix(data[off:], []byte(header)) {
			t.Errorf("object %d: offset %d points at %q", i+1, off, data[off:off+10])
		}
	}
	if !bytes.HasPrefix(data[info.StartXRef:], []byte("xref\n0 6\n"+xRefFree)) {
		t.Errorf("startxref does not point at the xref table")
	}

	want := "<< /Root 1 0 R /Size 6 >>"
	if info.Trailer != want {
		t.Errorf("wrong trailer %q", info.Trailer)
	}
}

func TestWriteObjectFraming(t *testing.T) {
	data, tab := writeTestTable(t, nil)
	info, err := ReadXRef(data)
	if err != nil {
		t.Fatal(err)
	}

	// Each object must be framed exactly as "<n> 0 obj\n<body>\nendobj\n",
	// with the next object (or the xref table) following immediately.
	for i, off := range info.Offsets {
		ref := NewReference(i+1, 0)
		want := fmt.Sprintf("%d 0 obj\n%s\nendobj\n", ref.Number, format(tab.Get(ref)))
		end := info.StartXRef
		if i+1 < len(info.Offsets) {
			end = info.Offsets[i+1]
		}
		if d := cmp.Diff(want, string(data[off:end])); d != "" {
			t.Errorf("object %d (-want +got):\n%s", ref.Number, d)
		}
	}
	if first := info.Offsets[0]; first != int64(len("%PDF-1.4\n")) {
		t.Errorf("first object at %d", first)
	}
}

func TestWriteStreamLength(t *testing.T) {
	data, tab := writeTestTable(t, nil)
	stm := tab.Get(NewReference(5, 0)).(*Stream)

	want := fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stm.Data), stm.Data)
	if !bytes.Contains(data, []byte(want)) {
		t.Errorf("stream with correct length not found")
	}
}

func TestWriteID(t *testing.T) {
	id := []byte{0x01, 0x02, 0x03, 0x04}
	data, _ := writeTestTable(t, &WriterOptions{ID: [][]byte{id, id}})
	info, err := ReadXRef(data)
	if err != nil {
		t.Fatal(err)
	}
	want := "<< /ID [<01020304> <01020304>] /Root 1 0 R /Size 6 >>"
	if info.Trailer != want {
		t.Errorf("wrong trailer %q", info.Trailer)
	}

	_, err = NewWriter(&bytes.Buffer{}, V1_4, &WriterOptions{ID: [][]byte{id}})
	if err == nil {
		t.Error("one-element ID accepted")
	}
}

func TestWriteUnsetObject(t *testing.T) {
	tab := &Table{}
	root := tab.Add(Dict{"Type": Name("Catalog")})
	tab.Alloc()

	out := &bytes.Buffer{}
	err := Write(out, V1_4, tab, root, nil)
	if !errors.Is(err, ErrUnsetObject) {
		t.Errorf("expected ErrUnsetObject, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("%d bytes written for an incomplete table", out.Len())
	}
}

func TestWriterSequential(t *testing.T) {
	out := &bytes.Buffer{}
	w, err := NewWriter(out, V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	pagesRef := w.Alloc()
	catalog, err := w.WriteIndirect(Dict{"Type": Name("Catalog"), "Pages": pagesRef}, Reference{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.WriteIndirect(Dict{"Type": Name("Pages"), "Kids": Array{}, "Count": Integer(0)}, pagesRef)
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.WriteIndirect(Integer(1), pagesRef)
	if !errors.Is(err, ErrDuplicateObject) {
		t.Errorf("expected ErrDuplicateObject, got %v", err)
	}

	err = w.Close(catalog)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalog)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	info, err := ReadXRef(out.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	// pagesRef was allocated first and written second
	if !(info.Offsets[0] > info.Offsets[1]) {
		t.Errorf("unexpected offsets %v", info.Offsets)
	}
	if !strings.HasPrefix(out.String(), "%PDF-1.7\n") {
		t.Errorf("wrong header")
	}
}

func TestWriterUnknownReference(t *testing.T) {
	out := &bytes.Buffer{}
	w, err := NewWriter(out, V1_4, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Alloc()
	headerLen := out.Len()

	cases := []Reference{
		NewReference(-1, 0),
		NewReference(2, 0),
		NewReference(17, 0),
	}
	for _, ref := range cases {
		_, err := w.WriteIndirect(Integer(1), ref)
		if !errors.Is(err, errUnknownRef) {
			t.Errorf("%d %d R: expected errUnknownRef, got %v", ref.Number, ref.Generation, err)
		}
	}
	if out.Len() != headerLen {
		t.Errorf("%d bytes written for rejected objects", out.Len()-headerLen)
	}
}

func TestWriterMissingObject(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, V1_4, nil)
	if err != nil {
		t.Fatal(err)
	}
	root, err := w.WriteIndirect(Dict{"Type": Name("Catalog")}, Reference{})
	if err != nil {
		t.Fatal(err)
	}
	w.Alloc()
	err = w.Close(root)
	if !errors.Is(err, ErrUnsetObject) {
		t.Errorf("expected ErrUnsetObject, got %v", err)
	}
}

func TestReadXRefMalformed(t *testing.T) {
	data, _ := writeTestTable(t, nil)

	cases := map[string][]byte{
		"empty":      nil,
		"truncated":  data[:len(data)-20],
		"bad offset": bytes.Replace(data, []byte("0000000009 00000 n"), []byte("0000000010 00000 n"), 1),
		"no free":    bytes.Replace(data, []byte(xRefFree), []byte("0000000000 65535 n \n"), 1),
	}
	for name, in := range cases {
		_, err := ReadXRef(in)
		var malformed *MalformedFileError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedFileError, got %v", name, err)
		}
	}
}
