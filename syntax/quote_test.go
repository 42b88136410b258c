// Copyright (c) 2021, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestQuote(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		str  string
		want string
	}{
		{"", ""},
		{"foo", "foo"},
		{"foo bar*?", "foo bar*?"},
		{"{", `\{`},
		{"}", `\}`},
		{",", `\,`},
		{`\`, `\\`},
		{`a{b,c}d\e`, `a\{b\,c\}d\\e`},
		{"世界{", `世界\{`},
		{`\\`, `\\\\`},
		{"\xff", "\xff"},
		{"{\xff", "\\{\xff"},
		{",a\xfe", "\\,a\xfe"},
		{"\\\xe4\xb8", "\\\\\xe4\xb8"},
	}

	for _, test := range tests {
		test := test
		t.Run("", func(t *testing.T) {
			t.Parallel()

			got := Quote(test.str)
			qt.Assert(t, got, qt.Equals, test.want)
			qt.Assert(t, NewLit(test.str).Quoted(), qt.Equals, test.want)

			e, err := Parse(got)
			qt.Assert(t, err, qt.IsNil)
			l, ok := e.(*Lit)
			qt.Assert(t, ok, qt.IsTrue)
			qt.Assert(t, l.Value, qt.Equals, test.str)
		})
	}
}
