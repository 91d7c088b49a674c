// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import "unicode/utf8"

var simpleEsc = [...]byte{
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'"':  '"',
	'/':  '/',
	'\\': '\\',
}

// Simple reports the byte denoted by the single-character escape \ch, and
// whether ch is one of the single-character escapes.
func Simple(ch rune) (byte, bool) {
	if ch < 0 || int(ch) >= len(simpleEsc) || simpleEsc[ch] == 0 {
		return 0, false
	}
	return simpleEsc[ch], true
}

// AppendCodeUnit appends the UTF-8 encoding of the UTF-16 code unit u to buf.
// Surrogate halves are not combined: each is encoded on its own as a
// three-byte sequence (generalized UTF-8), so that a lone or paired surrogate
// survives a decode and re-quote unchanged.
func AppendCodeUnit(buf []byte, u uint16) []byte {
	if u < 0xd800 || u > 0xdfff {
		return utf8.AppendRune(buf, rune(u))
	}
	return append(buf, 0xe0|byte(u>>12), 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
}

// HexValue reports the value of the hexadecimal digit ch, and whether ch is
// a hexadecimal digit.
func HexValue(ch rune) (uint16, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return uint16(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return uint16(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return uint16(ch-'A') + 10, true
	}
	return 0, false
}
