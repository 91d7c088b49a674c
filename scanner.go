// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonpos

import (
	"unicode/utf8"

	"github.com/RelentlessResults/vscode-LSP/internal/escape"
)

// A Cursor holds an immutable input text and the current scan position over
// it: the absolute byte offset and the apparent line and column.
//
// A Cursor supports exactly one step of backtracking: Back undoes the most
// recent call to Next, restoring the offset, line, and column that preceded
// it. Backing up twice without an intervening Next is a programming error and
// panics.
type Cursor struct {
	src string
	pos int
	lc  LineCol

	// Position before the most recent Next, valid if canBack.
	prevPos int
	prevLC  LineCol
	canBack bool
}

// NewCursor constructs a cursor positioned at the start of src.
func NewCursor(src string) *Cursor { return &Cursor{src: src} }

// Next returns the character at the current offset and advances past it.
// At the end of input it reports an UnexpectedEnd error.
//
// Bytes that are not valid UTF-8 are returned as utf8.RuneError and consume a
// single byte.
func (c *Cursor) Next() (rune, error) {
	if c.pos >= len(c.src) {
		return 0, c.fail(UnexpectedEnd)
	}
	ch, n := utf8.DecodeRuneInString(c.src[c.pos:])
	c.prevPos, c.prevLC, c.canBack = c.pos, c.lc, true
	c.pos += n
	c.lc = c.lc.advance(ch)
	return ch, nil
}

// Back undoes the most recent call to Next.
func (c *Cursor) Back() {
	if !c.canBack {
		panic("jsonpos: Back without a preceding Next")
	}
	c.pos, c.lc, c.canBack = c.prevPos, c.prevLC, false
}

// Peek reports the character at the current offset without consuming it.
// It returns false at the end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return ch, true
}

// AtEnd reports whether the input has been fully consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

// Offset reports the current absolute byte offset.
func (c *Cursor) Offset() int { return c.pos }

// Mark returns a snapshot of the current position.
func (c *Cursor) Mark() Mark { return Mark{Offset: c.pos, LineCol: c.lc} }

// Text returns the source text between the offsets pos and end.
func (c *Cursor) Text(pos, end int) string { return c.src[pos:end] }

// A Mark is a snapshot of a cursor position.
type Mark struct {
	Offset int
	LineCol
}

// SkipSpace consumes a maximal run of space, tab, carriage return, and line
// feed characters. It does not fail at the end of input.
func (c *Cursor) SkipSpace() {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.lc = c.lc.advance(rune(c.src[c.pos]))
		c.pos++
	}
	c.canBack = false
}

// Digits consumes a nonempty run of decimal digits and returns its text.
func (c *Cursor) Digits() (string, error) {
	start := c.pos
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
		c.pos++
		c.lc.Column++
	}
	c.canBack = false
	if c.pos == start {
		return "", c.Unexpected()
	}
	return c.src[start:c.pos], nil
}

// Literal consumes the characters of want, failing at the first character
// that does not match.
func (c *Cursor) Literal(want string) error {
	for _, w := range want {
		if err := c.expect(w); err != nil {
			return err
		}
	}
	return nil
}

// Hex4 consumes exactly four hexadecimal digits (either case) and returns
// the UTF-16 code unit they denote.
func (c *Cursor) Hex4() (uint16, error) {
	var v uint16
	for range 4 {
		ch, err := c.Next()
		if err != nil {
			return 0, err
		}
		d, ok := escape.HexValue(ch)
		if !ok {
			return 0, c.wasUnexpected()
		}
		v = v<<4 | d
	}
	return v, nil
}

// ScanString consumes the body of a string literal whose opening quotation mark
// has already been read, through the closing quotation mark, and returns the
// decoded contents.
//
// Characters other than escapes are copied verbatim. A \uXXXX escape decodes
// to a single UTF-16 code unit; surrogate pairs are not combined.
func (c *Cursor) ScanString() (string, error) {
	var buf []byte
	run, esc := c.pos, false
	for {
		at := c.pos
		ch, err := c.Next()
		if err != nil {
			return "", err
		}
		switch ch {
		case '"':
			if !esc {
				return c.src[run:at], nil
			}
			buf = append(buf, c.src[run:at]...)
			return string(buf), nil
		case '\\':
			buf = append(buf, c.src[run:at]...)
			if buf, err = c.unescape(buf); err != nil {
				return "", err
			}
			run, esc = c.pos, true
		}
	}
}

// unescape decodes the escape sequence following a backslash and appends it
// to buf.
func (c *Cursor) unescape(buf []byte) ([]byte, error) {
	ch, err := c.Next()
	if err != nil {
		return nil, err
	}
	if b, ok := escape.Simple(ch); ok {
		return append(buf, b), nil
	} else if ch != 'u' {
		return nil, c.wasUnexpected()
	}
	u, err := c.Hex4()
	if err != nil {
		return nil, err
	}
	return escape.AppendCodeUnit(buf, u), nil
}

// Unexpected returns an error describing the character at the current
// offset, or an UnexpectedEnd error if the input is exhausted.
func (c *Cursor) Unexpected() *SyntaxError {
	ch, ok := c.Peek()
	if !ok {
		return c.fail(UnexpectedEnd)
	}
	e := c.fail(UnexpectedToken)
	e.Char = ch
	return e
}

// Fail returns an error of the given kind at the current position.
func (c *Cursor) Fail(kind ErrorKind) *SyntaxError { return c.fail(kind) }

// expect consumes one character, which must be want.
func (c *Cursor) expect(want rune) error {
	ch, err := c.Next()
	if err != nil {
		return err
	} else if ch != want {
		return c.wasUnexpected()
	}
	return nil
}

// wasUnexpected backs up over the character just read and reports it.
func (c *Cursor) wasUnexpected() *SyntaxError {
	c.Back()
	return c.Unexpected()
}

func (c *Cursor) fail(kind ErrorKind) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: c.pos, Location: c.lc}
}

func isSpace(b byte) bool { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// IsNumStart reports whether ch can begin a number.
func IsNumStart(ch rune) bool { return ch == '-' || ('0' <= ch && ch <= '9') }
