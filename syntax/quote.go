// Copyright (c) 2021, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "strings"

// Quote returns a string that escapes all special characters in the given
// text with a backslash. Parsing the result yields a single *Lit whose
// Value is the given text.
//
// For example, Quote(`a{b,c}`) returns `a\{b\,c\}`.
func Quote(s string) string {
	if !strings.ContainsAny(s, `{},\`) { // short-cut without a string copy
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	quoteTo(&sb, s)
	return sb.String()
}

func quoteTo(w bufWriter, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		// special characters are all ASCII, so bytes suffice
		switch s[i] {
		case '{', '}', ',', '\\':
			w.WriteString(s[last:i])
			w.WriteByte('\\')
			last = i
		}
	}
	w.WriteString(s[last:])
}
