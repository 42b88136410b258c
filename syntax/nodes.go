// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Node represents a syntax tree node.
type Node interface {
	// Pos returns the first character of the node.
	Pos() Pos
	// End returns the character immediately after the node.
	End() Pos
}

// Expr is a glob expression: either a literal or a brace group.
// The types implementing Expr are *Lit and *Group.
type Expr interface {
	Node
	exprNode()
}

func (*Lit) exprNode()   {}
func (*Group) exprNode() {}

// Pos is a position within the source text, counted in characters
// starting at 0.
type Pos int

// Lit represents a literal fragment, with all escape sequences resolved.
//
// Value may contain any of the special characters; use Quoted to turn it
// back into valid source.
type Lit struct {
	ValuePos, ValueEnd Pos
	Value              string
}

// NewLit returns a literal holding the given decoded text.
func NewLit(value string) *Lit { return &Lit{Value: value} }

func (l *Lit) Pos() Pos { return l.ValuePos }
func (l *Lit) End() Pos { return l.ValueEnd }

// Quoted returns the source form of the literal, such that parsing it
// yields a single literal with the same Value.
func (l *Lit) Quoted() string { return Quote(l.Value) }

// Group represents a brace group, such as "foo{bar,baz}suffix".
//
// The prefix is always a literal, as the grammar only allows a literal
// before an opening brace. Each alternative is a full expression; an empty
// alternative is an empty literal. The suffix is everything after the
// closing brace, up to the next unmatched comma or brace.
type Group struct {
	Prefix *Lit
	Lbrace Pos
	Alts   []Expr
	Rbrace Pos
	Suffix Expr
}

// NewGroup returns a group built from the given parts, with no position
// information. A nil suffix is replaced by an empty literal.
func NewGroup(prefix string, alts []Expr, suffix Expr) *Group {
	if suffix == nil {
		suffix = NewLit("")
	}
	return &Group{Prefix: NewLit(prefix), Alts: alts, Suffix: suffix}
}

func (g *Group) Pos() Pos { return g.Prefix.Pos() }
func (g *Group) End() Pos {
	if g.Suffix != nil {
		return posMax(g.Rbrace+1, g.Suffix.End())
	}
	return g.Rbrace + 1
}

func posMax(p1, p2 Pos) Pos {
	if p2 > p1 {
		return p2
	}
	return p1
}
