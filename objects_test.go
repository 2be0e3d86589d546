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
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("back\\slash"), `(back\\slash)`},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Name("Helvetica-Bold"), "/Helvetica-Bold"},
		{Name("A B"), "/A#20B"},
		{Name("x#y"), "/x#23y"},
		{Number(612), "612"},
		{Number(756.5), "756.5"},
		{Number(math.Copysign(0, -1)), "0"},
		{Integer(-7), "-7"},
		{NewReference(7, 0), "7 0 R"},
		{NewReference(7, 2), "7 2 R"},
		{Dict{}, "<< >>"},
		{Dict{"A": nil}, "<< >>"},
		{
			Dict{
				"Type":  Name("Pages"),
				"Kids":  Array{NewReference(3, 0)},
				"Count": Integer(1),
			},
			"<< /Count 1 /Kids [3 0 R] /Type /Pages >>",
		},
		{
			Dict{"Font": Dict{"F1": NewReference(4, 0)}},
			"<< /Font << /F1 4 0 R >> >>",
		},
		{NewStream(nil, []byte("BT ET")), "<< /Length 5 >>\nstream\nBT ET\nendstream"},
		{
			NewStream(Dict{"Length": Integer(99)}, []byte("xy")),
			"<< /Length 2 >>\nstream\nxy\nendstream",
		},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestDictKeyOrder(t *testing.T) {
	d := Dict{}
	for _, key := range []Name{"Zeta", "Alpha", "Mu", "Beta", "Omega", "Kappa", "A", "Z"} {
		d[key] = Integer(len(key))
	}
	want := "<< /A 1 /Alpha 5 /Beta 4 /Kappa 5 /Mu 2 /Omega 5 /Z 1 /Zeta 4 >>"
	for range 20 {
		if out := format(d); out != want {
			t.Fatalf("got %q, want %q", out, want)
		}
	}
}

func TestStreamDictUnchanged(t *testing.T) {
	dict := Dict{"Length": Integer(99)}
	s := NewStream(dict, []byte("abc"))
	_ = format(s)
	if dict["Length"] != Integer(99) {
		t.Errorf("stream dictionary was modified: %v", dict)
	}
}

func TestReferenceIsZero(t *testing.T) {
	if NewReference(1, 0).IsZero() {
		t.Error("reference 1 0 R reported as zero")
	}
	if !(Reference{}).IsZero() {
		t.Error("zero reference not reported as zero")
	}
}
