// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import (
	"math/bits"

	"mvdan.cc/globgroups/syntax"
)

// Count returns the number of expansions of e without producing them.
// ok is false if the number does not fit in a uint64.
func Count(e syntax.Expr) (n uint64, ok bool) {
	return NewExpander(e).Count()
}

// Count returns the number of expansions, like the Count function.
//
// A literal has one expansion. A group has the sum of the expansions of its
// alternatives, multiplied by the expansions of its suffix.
func (x *Expander) Count() (n uint64, ok bool) {
	return x.count(0)
}

func (x *Expander) count(i int) (uint64, bool) {
	n := &x.nodes[i]
	if n.kind == litNode {
		return 1, true
	}
	var sum uint64
	for _, alt := range x.alts[n.altsFrom:n.altsTo] {
		c, ok := x.count(alt)
		if !ok {
			return 0, false
		}
		var carry uint64
		if sum, carry = bits.Add64(sum, c, 0); carry != 0 {
			return 0, false
		}
	}
	suffix, ok := x.count(n.suffix)
	if !ok {
		return 0, false
	}
	hi, lo := bits.Mul64(sum, suffix)
	if hi != 0 {
		return 0, false
	}
	return lo, true
}
