// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonpos implements the lexical layer of a position-tracking JSON
// parser, whose purpose is to let a diagnostics layer map a semantic error
// back to a precise range of the original document.
//
// # Scanning
//
// A Cursor holds the input text and the current scan state: the absolute
// byte offset, and the apparent line and column. Lines and columns are
// 0-based; a tab advances the column by 4, a carriage return resets it, and
// a line feed resets it and advances the line.
//
//	c := jsonpos.NewCursor(text)
//	c.SkipSpace()
//	ch, err := c.Next()
//
// The Cursor also provides the lexical helpers used by the grammar: digit
// runs, four-digit hex code units, literal keywords, and string bodies with
// escape decoding. See package ast for the grammar itself.
//
// # Errors
//
// All failures are reported as a *SyntaxError, which records the kind of
// failure, the offset, and the line and column where scanning stopped:
//
//	Unexpected token T in JSON at position 0
//	Unexpected end of JSON input
//
// # Utilities
//
// Quote and Unquote convert between Go strings and JSON string literals.
// EscapePointerSegment and UnescapePointerSegment convert between object
// keys and JSON Pointer (RFC 6901) path segments.
package jsonpos
