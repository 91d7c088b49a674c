// Package pointer implements JSON Pointer (RFC 6901) paths over the values
// of package ast.
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
	"github.com/RelentlessResults/vscode-LSP/ast"
)

/*
Grammar:

  pointer = *( "/" token )
    token = *( unescaped / escaped )
  escaped = "~" ( "0" / "1" )

Source:
  https://www.rfc-editor.org/rfc/rfc6901
*/

// A Pointer is a parsed JSON Pointer: a sequence of unescaped reference
// tokens. The empty Pointer refers to the whole document.
type Pointer []string

// Parse parses s as a JSON Pointer.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	t, ok := strings.CutPrefix(s, "/")
	if !ok {
		return nil, errors.New("missing leading slash")
	}
	toks := strings.Split(t, "/")
	for i, tok := range toks {
		if err := checkEscapes(tok); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		toks[i] = jsonpos.UnescapePointerSegment(tok)
	}
	return Pointer(toks), nil
}

// MustParse parses s as a JSON Pointer, and panics if s is not valid.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("pointer: invalid pointer %q: %v", s, err))
	}
	return p
}

func checkEscapes(tok string) error {
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			continue
		} else if i+1 == len(tok) {
			return errors.New("incomplete escape")
		} else if c := tok[i+1]; c != '0' && c != '1' {
			return fmt.Errorf("invalid escape ~%c", c)
		}
		i++
	}
	return nil
}

// String renders p in its escaped text form, the form recorded by the parser
// for each value and member.
func (p Pointer) String() string {
	var buf strings.Builder
	for _, tok := range p {
		buf.WriteByte('/')
		buf.WriteString(jsonpos.EscapePointerSegment(tok))
	}
	return buf.String()
}

// Key returns a new pointer that extends p with an object key.
func (p Pointer) Key(key string) Pointer {
	return append(p[:len(p):len(p)], key)
}

// Index returns a new pointer that extends p with an array index.
func (p Pointer) Index(i int) Pointer {
	return append(p[:len(p):len(p)], strconv.Itoa(i))
}

// Parent returns the pointer to the container of p. The parent of the root
// is the root.
func (p Pointer) Parent() Pointer {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Resolve returns the value in v that p refers to. An object step selects the
// member with that key; an array step must be a decimal index without
// leading zeroes. The "-" token (past the end of an array) never resolves.
func Resolve(v ast.Value, p Pointer) (ast.Value, error) {
	cur := v
	for i, tok := range p {
		switch t := cur.(type) {
		case *ast.Object:
			m := t.Find(tok)
			if m == nil {
				return nil, fmt.Errorf("at %s: key %q not found", p[:i], tok)
			}
			cur = m.Value
		case *ast.Array:
			n, err := parseIndex(tok)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", p[:i], err)
			} else if n >= len(t.Values) {
				return nil, fmt.Errorf("at %s: index %d out of range (%d elements)", p[:i], n, len(t.Values))
			}
			cur = t.Values[n]
		default:
			return nil, fmt.Errorf("at %s: cannot index %T with %q", p[:i], cur, tok)
		}
	}
	return cur, nil
}

func parseIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("invalid index %q", tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("invalid index %q", tok)
		}
	}
	return strconv.Atoi(tok)
}
