// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package syntax implements parsing and formatting of brace glob
// expressions, such as "foo-{bar,baz}-beat".
//
// The four special characters are '{', '}', ',' and '\'. A backslash
// escapes any of them, and nothing else.
package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const eof = -1

// Parser holds the internal state of the parsing mechanism of a glob
// expression. Nodes are allocated in batches, which are kept across calls to
// Parse.
type Parser struct {
	src string

	r   rune // current character, or eof
	w   int  // byte width of r
	off int  // byte offset of r
	pos Pos  // character index of r

	err error

	litBatch   []Lit
	groupBatch []Group
	altsBatch  []Expr

	litBuf strings.Builder
}

// NewParser allocates a new Parser.
func NewParser() *Parser { return &Parser{} }

// Parse parses a whole glob expression. The entire input must be consumed.
// If the input is malformed, the error returned is a *ParseError
// describing the first failure, and the returned expression is nil.
func Parse(src string) (Expr, error) {
	return NewParser().Parse(src)
}

// Parse parses a whole glob expression. See the Parse function.
func (p *Parser) Parse(src string) (Expr, error) {
	p.reset(src)
	e := p.expr()
	if p.err == nil && p.r != eof {
		p.curErr("end of input")
	}
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

func (p *Parser) reset(src string) {
	p.src = src
	p.off, p.w, p.pos = 0, 0, 0
	p.err = nil
	p.decode()
}

func (p *Parser) decode() {
	if p.off >= len(p.src) {
		p.r, p.w = eof, 0
		return
	}
	if b := p.src[p.off]; b < utf8.RuneSelf {
		p.r, p.w = rune(b), 1
		return
	}
	p.r, p.w = utf8.DecodeRuneInString(p.src[p.off:])
}

func (p *Parser) next() {
	if p.r == eof {
		return
	}
	p.off += p.w
	p.pos++
	p.decode()
}

func (p *Parser) lit(pos, end Pos, val string) *Lit {
	if len(p.litBatch) == 0 {
		p.litBatch = make([]Lit, 32)
	}
	l := &p.litBatch[0]
	l.ValuePos = pos
	l.ValueEnd = end
	l.Value = val
	p.litBatch = p.litBatch[1:]
	return l
}

func (p *Parser) group() *Group {
	if len(p.groupBatch) == 0 {
		p.groupBatch = make([]Group, 16)
	}
	g := &p.groupBatch[0]
	p.groupBatch = p.groupBatch[1:]
	return g
}

func (p *Parser) alts() []Expr {
	if len(p.altsBatch) < 4 {
		p.altsBatch = make([]Expr, 64)
	}
	alts := p.altsBatch[:0:4]
	p.altsBatch = p.altsBatch[4:]
	return alts
}

// ParseError represents an error found when parsing a glob expression.
type ParseError struct {
	Pos    Pos // character index, starting at 0
	Offset int // byte offset, starting at 0

	// Expected describes what the grammar allows at Pos, and Found is the
	// quoted character at Pos, or "end of input".
	Expected, Found string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s at position %d", e.Expected, e.Found, e.Pos)
}

// errPass only keeps the first error; once set, the parser stops consuming
// input.
func (p *Parser) errPass(err error) {
	if p.err == nil {
		p.err = err
		p.r = eof
	}
}

func (p *Parser) curErr(expected string) {
	found := "end of input"
	if p.r != eof {
		found = strconv.QuoteRune(p.r)
	}
	p.errPass(&ParseError{
		Pos:      p.pos,
		Offset:   p.off,
		Expected: expected,
		Found:    found,
	})
}

func special(r rune) bool {
	switch r {
	case '{', '}', ',', '\\':
		return true
	}
	return false
}

// expr parses a group, or a literal if no opening brace follows it.
func (p *Parser) expr() Expr {
	prefix := p.literal()
	if p.r != '{' {
		return prefix
	}
	g := p.group()
	g.Prefix = prefix
	g.Lbrace = p.pos
	p.next()
	g.Alts = p.alts()
	for {
		g.Alts = append(g.Alts, p.expr())
		if p.err != nil {
			return g
		}
		if p.r == ',' {
			p.next()
			continue
		}
		if p.r == '}' {
			break
		}
		p.curErr("',' or '}'")
		return g
	}
	g.Rbrace = p.pos
	p.next()
	g.Suffix = p.expr()
	return g
}

// literal consumes characters until an unescaped special character or the
// end of input. Without escape sequences, the value is a substring of the
// source.
func (p *Parser) literal() *Lit {
	pos, start := p.pos, p.off
	for p.r != eof && !special(p.r) {
		p.next()
	}
	if p.r != '\\' {
		return p.lit(pos, p.pos, p.src[start:p.off])
	}
	p.litBuf.Reset()
	p.litBuf.WriteString(p.src[start:p.off])
	for p.r != eof {
		if p.r == '\\' {
			p.next()
			if !special(p.r) {
				p.curErr(`escaped '{', '}', ',' or '\'`)
				break
			}
		} else if special(p.r) {
			break
		}
		// copy the source bytes, as invalid UTF-8 must be kept as is
		p.litBuf.WriteString(p.src[p.off : p.off+p.w])
		p.next()
	}
	return p.lit(pos, p.pos, p.litBuf.String())
}
