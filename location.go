// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonpos

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Pos }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
//
// Columns count characters, except that a tab advances the column by 4.
// A carriage return resets the column to 0; a line feed resets the column
// to 0 and advances the line.
type LineCol struct {
	Line   int // line number, 0-based
	Column int // column offset in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// advance returns the position following lc after consuming ch.
func (lc LineCol) advance(ch rune) LineCol {
	switch ch {
	case '\t':
		lc.Column += 4
	case '\r':
		lc.Column = 0
	case '\n':
		lc.Line++
		lc.Column = 0
	default:
		lc.Column++
	}
	return lc
}

// Position reports the line and column of offset in text, using the same
// column rules as a Cursor. Offsets past the end of text report the
// position at the end.
func Position(text string, offset int) LineCol {
	var lc LineCol
	for i, ch := range text {
		if i >= offset {
			break
		}
		lc = lc.advance(ch)
	}
	return lc
}
