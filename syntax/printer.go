// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var bufWriterFree = sync.Pool{
	New: func() any { return bufio.NewWriter(nil) },
}

// Printer writes glob expressions in their source form.
type Printer struct{}

// NewPrinter allocates a new Printer.
func NewPrinter() *Printer { return &Printer{} }

// Print writes the source form of the given node to w. Parsing the output
// gives an expression with the same expansions as node. Special characters
// in literals are escaped, and nothing else is.
//
// The only nodes accepted are *Lit and *Group. A group without alternatives
// has no source form, so it results in an error. A group without a prefix
// literal breaks the tree's invariants and causes a panic.
func (*Printer) Print(w io.Writer, node Node) error {
	e, ok := node.(Expr)
	if !ok {
		return fmt.Errorf("unsupported node type: %T", node)
	}
	bw := bufWriterFree.Get().(*bufio.Writer)
	bw.Reset(w)
	p := printer{bufWriter: bw}
	p.expr(e)
	err := bw.Flush()
	bw.Reset(nil)
	bufWriterFree.Put(bw)
	if p.err != nil {
		return p.err
	}
	return err
}

// Print is a shortcut for NewPrinter().Print(w, e).
func Print(w io.Writer, e Expr) error {
	return NewPrinter().Print(w, e)
}

// Format returns the source form of the given expression, as written by
// Print. It panics where Print would return an error.
func Format(e Expr) string {
	var sb strings.Builder
	p := printer{bufWriter: &sb}
	p.expr(e)
	if p.err != nil {
		panic(p.err)
	}
	return sb.String()
}

// errNoAlts is returned when printing a group built without alternatives.
// Even "{}" holds one empty alternative, so such a group cannot be written.
var errNoAlts = errors.New("syntax: cannot print a group without alternatives")

type bufWriter interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

type printer struct {
	bufWriter

	err error
}

func (p *printer) expr(e Expr) {
	switch x := e.(type) {
	case *Lit:
		quoteTo(p, x.Value)
	case *Group:
		if x.Prefix == nil {
			panic("syntax: group without a prefix literal")
		}
		if len(x.Alts) == 0 {
			if p.err == nil {
				p.err = errNoAlts
			}
			return
		}
		quoteTo(p, x.Prefix.Value)
		p.WriteByte('{')
		for i, alt := range x.Alts {
			if i > 0 {
				p.WriteByte(',')
			}
			p.expr(alt)
		}
		p.WriteByte('}')
		if x.Suffix != nil {
			p.expr(x.Suffix)
		}
	default:
		panic(fmt.Sprintf("unexpected expression type: %T", x))
	}
}
