// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package expand performs brace expansion on parsed glob expressions,
// producing one string at a time.
//
// The number of expansions can grow exponentially with the number of
// groups, and no limit is imposed here. Callers wanting a cap can use Count
// before expanding, or stop pulling from an Iterator early.
package expand

import (
	"fmt"
	"iter"
	"strings"

	"mvdan.cc/globgroups/syntax"
)

type nodeKind uint8

const (
	litNode nodeKind = iota
	groupNode
)

// node is an entry in an Expander's arena. A literal only uses text. A group
// uses text as its prefix, its alternatives are alts[altsFrom:altsTo] of the
// arena, and suffix is a node index.
type node struct {
	kind             nodeKind
	text             string
	altsFrom, altsTo int
	suffix           int
}

// Expander is a glob expression flattened into an arena of nodes addressed
// by index. It is immutable once built, so any number of iterators may use
// it at once.
type Expander struct {
	nodes []node
	alts  []int
}

// NewExpander prepares the given expression for expansion. The string
// fragments of the tree are shared, not copied.
//
// It panics if the tree breaks the invariants that the parser guarantees,
// such as a group without a prefix literal or suffix.
func NewExpander(e syntax.Expr) *Expander {
	x := &Expander{}
	if e != nil {
		// A group's prefix literal shares the group's node, so there is one
		// node per literal.
		lits, alts := 0, 0
		syntax.Walk(e, func(node syntax.Node) bool {
			switch node := node.(type) {
			case *syntax.Lit:
				lits++
			case *syntax.Group:
				alts += len(node.Alts)
			}
			return true
		})
		x.nodes = make([]node, 0, lits)
		x.alts = make([]int, 0, alts)
	}
	x.compile(e)
	return x
}

func (x *Expander) compile(e syntax.Expr) int {
	i := len(x.nodes)
	switch e := e.(type) {
	case *syntax.Lit:
		x.nodes = append(x.nodes, node{kind: litNode, text: e.Value})
	case *syntax.Group:
		if e.Prefix == nil {
			panic("expand: group without a prefix literal")
		}
		if e.Suffix == nil {
			panic("expand: group without a suffix")
		}
		x.nodes = append(x.nodes, node{kind: groupNode, text: e.Prefix.Value})
		// Alternatives may contain groups of their own, so their indexes
		// are gathered first and only then stored contiguously.
		var small [4]int
		alts := small[:0]
		for _, alt := range e.Alts {
			alts = append(alts, x.compile(alt))
		}
		suffix := x.compile(e.Suffix)
		n := &x.nodes[i]
		n.altsFrom = len(x.alts)
		x.alts = append(x.alts, alts...)
		n.altsTo = len(x.alts)
		n.suffix = suffix
	default:
		panic(fmt.Sprintf("expand: unexpected expression type %T", e))
	}
	return i
}

// Iter returns a new iterator over all expansions, positioned before the
// first one.
func (x *Expander) Iter() *Iterator {
	return &Iterator{x: x, cur: make([]int, len(x.nodes))}
}

// All returns every expansion in order. Each use of the sequence starts from
// the beginning with its own Iterator.
func (x *Expander) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := x.Iter()
		for it.Next() {
			if !yield(it.Text()) {
				return
			}
		}
	}
}

// Iterator walks the expansions of an Expander in order, in the manner of
// bufio.Scanner:
//
//	it := expand.Expand(e)
//	for it.Next() {
//		fmt.Println(it.Text())
//	}
//
// Output is produced left to right, depth first: for each alternative of a
// group in order, each expansion of that alternative is combined with every
// expansion of the group's suffix.
type Iterator struct {
	x *Expander

	// cur holds the active alternative of each group node, indexed like
	// Expander.nodes. Only nodes on the current path are meaningful.
	cur []int

	started, done bool

	parts []string
	text  string
}

// Next advances the iterator to the next expansion, which is then available
// through Text. It returns false once there are no more expansions, and
// keeps returning false from then on.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	var ok bool
	if !it.started {
		it.started = true
		ok = it.first(0)
	} else {
		ok = it.advance(0)
	}
	if !ok {
		it.done = true
		it.parts, it.text = nil, ""
		return false
	}
	it.parts = it.collect(0, it.parts[:0])
	it.text = join(it.parts)
	return true
}

// Text returns the expansion produced by the last call to Next. It is empty
// before the first call, and once Next has returned false.
func (it *Iterator) Text() string { return it.text }

// first positions node i on its first expansion. It reports false if the
// node has no expansions at all, which only happens for groups built without
// any alternatives.
func (it *Iterator) first(i int) bool {
	n := &it.x.nodes[i]
	if n.kind == litNode {
		return true
	}
	for k := n.altsFrom; k < n.altsTo; k++ {
		if it.first(it.x.alts[k]) {
			it.cur[i] = k
			return it.first(n.suffix)
		}
	}
	return false
}

// advance moves node i, which must be on an expansion, onto the next one. It
// reports false if there was none left.
func (it *Iterator) advance(i int) bool {
	n := &it.x.nodes[i]
	if n.kind == litNode {
		return false
	}
	if it.advance(n.suffix) {
		return true
	}
	// The suffix is exhausted; move the alternative forward and restart the
	// suffix from its first expansion.
	k := it.cur[i]
	if it.advance(it.x.alts[k]) {
		return it.first(n.suffix)
	}
	for k++; k < n.altsTo; k++ {
		if it.first(it.x.alts[k]) {
			it.cur[i] = k
			return it.first(n.suffix)
		}
	}
	return false
}

// collect appends the fragments forming the current expansion of node i.
func (it *Iterator) collect(i int, parts []string) []string {
	n := &it.x.nodes[i]
	if n.text != "" {
		parts = append(parts, n.text)
	}
	if n.kind == litNode {
		return parts
	}
	parts = it.collect(it.x.alts[it.cur[i]], parts)
	return it.collect(n.suffix, parts)
}

// join concatenates the fragments, without any allocation if there are fewer
// than two.
func join(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	total := 0
	for _, part := range parts {
		total += len(part)
	}
	var sb strings.Builder
	sb.Grow(total)
	for _, part := range parts {
		sb.WriteString(part)
	}
	return sb.String()
}

// Expand returns a new iterator over the expansions of e.
// See Expander for the panics it may cause.
func Expand(e syntax.Expr) *Iterator {
	return NewExpander(e).Iter()
}

// All returns the expansions of e as a sequence, which may be iterated over
// any number of times.
func All(e syntax.Expr) iter.Seq[string] {
	return NewExpander(e).All()
}

// Strings returns all of the expansions of e at once.
func Strings(e syntax.Expr) []string {
	var list []string
	for s := range All(e) {
		list = append(list, s)
	}
	return list
}
