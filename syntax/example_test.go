// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax_test

import (
	"fmt"
	"os"

	"mvdan.cc/globgroups/syntax"
)

func Example() {
	e, err := syntax.Parse(`foo-{bar,\{baz\}}-beat`)
	if err != nil {
		return
	}
	g := e.(*syntax.Group)
	fmt.Println(g.Prefix.Value)
	for _, alt := range g.Alts {
		fmt.Println(alt.(*syntax.Lit).Value)
	}
	syntax.Print(os.Stdout, e)
	fmt.Println()
	// Output:
	// foo-
	// bar
	// {baz}
	// foo-{bar,\{baz\}}-beat
}

func ExampleParse_error() {
	_, err := syntax.Parse(`a{b,c`)
	fmt.Println(err)
	// Output: expected ',' or '}', found end of input at position 5
}

func ExampleQuote() {
	fmt.Println(syntax.Quote(`a{b,c}`))
	// Output: a\{b\,c\}
}

func ExampleWalk() {
	e, err := syntax.Parse(`x{a,b{c,d}}`)
	if err != nil {
		return
	}
	syntax.Walk(e, func(node syntax.Node) bool {
		if g, ok := node.(*syntax.Group); ok {
			fmt.Printf("group at %d with %d alternatives\n", g.Pos(), len(g.Alts))
		}
		return true
	})
	// Output:
	// group at 0 with 2 alternatives
	// group at 4 with 2 alternatives
}
