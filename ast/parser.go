// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"cmp"
	"strconv"
	"strings"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options control the behaviour of the parser. A zero Options is ready for
// use and applies DefaultMaxDepth.
type Options struct {
	// MaxDepth is the maximum number of arrays and objects that may be open
	// at once. Zero means DefaultMaxDepth; a negative value disables the
	// limit, leaving nesting bounded only by the call stack.
	MaxDepth int
}

// Parse parses text as a single JSON value using default options.
func Parse(text string) (*Document, error) { return Options{}.Parse(text) }

// Parse parses text as a single JSON value, which may be surrounded by
// whitespace but nothing else. Parsing is all-or-nothing: in case of error
// no tree is returned, and the error has concrete type *jsonpos.SyntaxError.
func (o Options) Parse(text string) (_ *Document, err error) {
	defer recoverParseError(&err)

	p := &parser{
		c:    jsonpos.NewCursor(text),
		max:  cmp.Or(o.MaxDepth, DefaultMaxDepth),
		keys: make(map[string]jsonpos.Span),
	}
	root := p.parseValue("", true)
	return &Document{Root: root, Keys: p.keys, text: text}, nil
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*jsonpos.SyntaxError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// A parser is the state of a single call to Parse. Grammar violations are
// reported by panicking with a *jsonpos.SyntaxError, recovered by Parse.
type parser struct {
	c     *jsonpos.Cursor
	depth int
	max   int
	keys  map[string]jsonpos.Span // member pointer → key span
}

// parseValue consumes a single value of any type, with the pointer ptr,
// along with any whitespace on either side. If top is true, the value must
// extend to the end of the input.
func (p *parser) parseValue(ptr string, top bool) Value {
	c := p.c
	c.SkipSpace()
	pos := c.Offset()

	var v Value
	switch ch := p.next(); ch {
	case 't':
		p.check(c.Literal("rue"))
		v = &Bool{node: p.node(ptr, pos), value: true}
	case 'f':
		p.check(c.Literal("alse"))
		v = &Bool{node: p.node(ptr, pos), value: false}
	case 'n':
		p.check(c.Literal("ull"))
		v = &Null{node: p.node(ptr, pos)}
	case '"':
		s, err := c.ScanString()
		p.check(err)
		v = &String{node: p.node(ptr, pos), value: s}
	case '[':
		v = p.parseArray(ptr, pos)
	case '{':
		v = p.parseObject(ptr, pos)
	default:
		c.Back()
		if !jsonpos.IsNumStart(ch) {
			p.fail(c.Unexpected())
		}
		v = p.parseNumber(ptr)
	}

	c.SkipSpace()
	if top && !c.AtEnd() {
		p.fail(c.Unexpected())
	}
	return v
}

// parseNumber consumes a number literal.
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	   int = "0" / digits
//	  frac = "." digits
//	   exp = ( "e" / "E" ) [ "+" / "-" ] digits
func (p *parser) parseNumber(ptr string) *Number {
	c := p.c
	pos := c.Offset()
	if p.peekIs('-') {
		p.next()
	}
	if p.peekIs('0') {
		p.next()
	} else {
		p.digits()
	}
	if p.peekIs('.') {
		p.next()
		p.digits()
	}
	if p.peekIs('e', 'E') {
		p.next()
		if p.peekIs('+', '-') {
			p.next()
		}
		p.digits()
	}

	text := c.Text(pos, c.Offset())

	// The grammar above admits only text ParseFloat accepts, so the only
	// possible error is a range error, for which f is ±Inf or 0.
	f, _ := strconv.ParseFloat(text, 64)
	return &Number{node: p.node(ptr, pos), text: text, value: f}
}

// parseArray consumes the elements of an array and its closing bracket.
// Precondition: the opening bracket at pos has been consumed.
func (p *parser) parseArray(ptr string, pos int) *Array {
	p.enter(pos)
	defer p.leave()

	c := p.c
	arr := new(Array)
	c.SkipSpace()
	if p.next() == ']' {
		arr.node = p.node(ptr, pos)
		return arr
	}
	c.Back()

	for i := 0; ; i++ {
		arr.Values = append(arr.Values, p.parseValue(ptr+"/"+strconv.Itoa(i), false))
		c.SkipSpace()
		if p.delimiter(']') {
			arr.node = p.node(ptr, pos)
			return arr
		}
	}
}

// parseObject consumes the members of an object and its closing brace.
// Precondition: the opening brace at pos has been consumed.
//
// A repeated key replaces the earlier member; the last value wins.
func (p *parser) parseObject(ptr string, pos int) *Object {
	p.enter(pos)
	defer p.leave()

	c := p.c
	obj := new(Object)
	c.SkipSpace()
	if p.next() == '}' {
		obj.node = p.node(ptr, pos)
		return obj
	}
	c.Back()

	for {
		mpos := c.Offset()
		p.expect('"')
		kpos := c.Offset()
		key, err := c.ScanString()
		p.check(err)
		kspan := jsonpos.Span{Pos: kpos, End: c.Offset()}
		mptr := ptr + "/" + jsonpos.EscapePointerSegment(key)

		c.SkipSpace()
		p.expect(':')
		c.SkipSpace()
		if obj.Find(key) != nil {
			p.dropKeys(mptr)
		}
		val := p.parseValue(mptr, false)

		obj.set(&Member{
			node:    node{span: jsonpos.Span{Pos: mpos, End: val.Span().End}, ptr: mptr},
			Key:     key,
			KeySpan: kspan,
			Value:   val,
		})
		p.keys[mptr] = kspan

		c.SkipSpace()
		if p.delimiter('}') {
			obj.node = p.node(ptr, pos)
			return obj
		}
	}
}

// delimiter consumes the token after an array element or object member,
// which must be a comma or end. It reports whether it was end; after a
// comma it also skips whitespace.
func (p *parser) delimiter(end rune) bool {
	switch p.next() {
	case end:
		return true
	case ',':
		p.c.SkipSpace()
		return false
	}
	p.c.Back()
	p.fail(p.c.Unexpected())
	panic("unreachable")
}

// dropKeys removes the key entries for the member at mptr and everything
// beneath it, when a repeated key is about to replace that member.
func (p *parser) dropKeys(mptr string) {
	prefix := mptr + "/"
	for k := range p.keys {
		if k == mptr || strings.HasPrefix(k, prefix) {
			delete(p.keys, k)
		}
	}
}

func (p *parser) enter(pos int) {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		c := p.c
		c.Back() // to the opening bracket at pos
		err := c.Fail(jsonpos.NestingTooDeep)
		err.Depth = p.max
		p.fail(err)
	}
}

func (p *parser) leave() { p.depth-- }

// node returns the node for a value that began at pos and ends at the
// current offset.
func (p *parser) node(ptr string, pos int) node {
	return node{span: jsonpos.Span{Pos: pos, End: p.c.Offset()}, ptr: ptr}
}

func (p *parser) next() rune {
	ch, err := p.c.Next()
	p.check(err)
	return ch
}

// expect consumes one character, which must be want.
func (p *parser) expect(want rune) {
	if p.next() != want {
		p.c.Back()
		p.fail(p.c.Unexpected())
	}
}

// peekIs reports whether the next character is one of want.
func (p *parser) peekIs(want ...rune) bool {
	ch, ok := p.c.Peek()
	if !ok {
		return false
	}
	for _, w := range want {
		if ch == w {
			return true
		}
	}
	return false
}

func (p *parser) digits() {
	_, err := p.c.Digits()
	p.check(err)
}

func (p *parser) check(err error) {
	if err != nil {
		panic(err)
	}
}

func (p *parser) fail(err *jsonpos.SyntaxError) { panic(err) }
