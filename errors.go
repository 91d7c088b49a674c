// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonpos

import "fmt"

// ErrorKind classifies a SyntaxError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedToken ErrorKind = iota + 1 // a character that the grammar does not allow
	UnexpectedEnd                        // input ended before the value was complete
	NestingTooDeep                       // arrays and objects nested past the limit
)

var kindStr = [...]string{
	0:               "invalid error kind",
	UnexpectedToken: "unexpected token",
	UnexpectedEnd:   "unexpected end",
	NestingTooDeep:  "nesting too deep",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// Sentinel errors for use with errors.Is. A *SyntaxError matches the
// sentinel of its Kind.
var (
	ErrUnexpectedToken = &SyntaxError{Kind: UnexpectedToken}
	ErrUnexpectedEnd   = &SyntaxError{Kind: UnexpectedEnd}
	ErrNestingTooDeep  = &SyntaxError{Kind: NestingTooDeep}
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // absolute byte offset of the failure
	Location LineCol // line and column of the failure
	Char     rune    // the offending character, for UnexpectedToken
	Depth    int     // the exceeded limit, for NestingTooDeep
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("Unexpected token %c in JSON at position %d", e.Char, e.Offset)
	case UnexpectedEnd:
		return "Unexpected end of JSON input"
	case NestingTooDeep:
		return fmt.Sprintf("JSON nesting depth exceeds %d at position %d", e.Depth, e.Offset)
	default:
		return fmt.Sprintf("%v at position %d", e.Kind, e.Offset)
	}
}

// Is reports whether target is a *SyntaxError of the same kind, so that
// errors.Is(err, ErrUnexpectedEnd) works for any unexpected end.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}
