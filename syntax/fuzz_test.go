// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "testing"

func FuzzQuote(f *testing.F) {
	f.Add("foo")
	f.Add("foo{bar,baz}")
	f.Add(`back\slash`)
	f.Add("}{,")
	f.Add("世界")
	f.Add("{\xff")
	f.Fuzz(func(t *testing.T, s string) {
		quoted := Quote(s)
		e, err := Parse(quoted)
		if err != nil {
			t.Fatalf("parse error on %q quoted as %q: %v", s, quoted, err)
		}
		l, ok := e.(*Lit)
		if !ok {
			t.Fatalf("%q quoted as %q parsed as %T", s, quoted, e)
		}
		if l.Value != s {
			t.Fatalf("value mismatch on %q quoted as %q: got %q", s, quoted, l.Value)
		}
	})
}

func FuzzParsePrint(f *testing.F) {
	for _, tc := range parseTests {
		f.Add(tc.in)
	}
	for _, tc := range parseErrTests {
		f.Add(tc.in)
	}
	f.Fuzz(func(t *testing.T, src string) {
		e, err := Parse(src)
		if err != nil {
			t.Skip() // not a valid glob expression
		}
		printed := Format(e)
		e2, err := Parse(printed)
		if err != nil {
			t.Fatalf("printed %q from %q does not parse: %v", printed, src, err)
		}
		if printed != src {
			t.Fatalf("printing %q gave %q", src, printed)
		}
		if printed2 := Format(e2); printed2 != printed {
			t.Fatalf("printing is not stable for %q: %q then %q", src, printed, printed2)
		}
	})
}
