// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "fmt"

// Walk traverses a syntax tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Walk invokes f
// recursively for the prefix, each of the alternatives in order, and the
// suffix of a group, followed by f(nil). Nil children are skipped.
func Walk(node Node, f func(Node) bool) {
	if !f(node) {
		return
	}

	switch node := node.(type) {
	case *Lit:
	case *Group:
		if node.Prefix != nil {
			Walk(node.Prefix, f)
		}
		walkList(node.Alts, f)
		if node.Suffix != nil {
			Walk(node.Suffix, f)
		}
	default:
		panic(fmt.Sprintf("syntax.Walk: unexpected node type %T", node))
	}

	f(nil)
}

func walkList[N Node](list []N, f func(Node) bool) {
	for _, node := range list {
		if Node(node) != nil {
			Walk(node, f)
		}
	}
}
