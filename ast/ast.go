// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a parser that
// constructs syntax trees from JSON source while recording the location of
// every value and object key.
package ast

import (
	"strings"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// Span reports the source span of the value, excluding surrounding
	// whitespace.
	Span() jsonpos.Span

	// Pointer reports the JSON Pointer of the value within its document.
	// The root value has the empty pointer "".
	Pointer() string

	// JSON renders the value as JSON text without insignificant whitespace.
	JSON() string
}

type node struct {
	span jsonpos.Span
	ptr  string
}

// Span satisfies part of the Value interface.
func (n node) Span() jsonpos.Span { return n.span }

// Pointer satisfies part of the Value interface.
func (n node) Pointer() string { return n.ptr }

// An Object is a collection of key-value members. Keys are unique; members
// are kept in the order their keys first appeared.
type Object struct {
	node
	Members []*Member

	index map[string]int
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	if i, ok := o.index[key]; ok {
		return o.Members[i]
	}
	return nil
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// set adds m to o. If o already has a member with the same key, m replaces
// it in place.
func (o *Object) set(m *Member) {
	if i, ok := o.index[m.Key]; ok {
		o.Members[i] = m
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[m.Key] = len(o.Members)
	o.Members = append(o.Members, m)
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	node // from the opening quote of the key to the end of the value

	Key     string
	KeySpan jsonpos.Span // from just inside the opening quote to just past the closing quote
	Value   Value
}

// JSON renders m as "key":value.
func (m *Member) JSON() string { return jsonpos.Quote(m.Key) + ":" + m.Value.JSON() }

// An Array is a sequence of values.
type Array struct {
	node
	Values []Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Number is a numeric value. The source text is retained alongside the
// decoded floating-point value.
type Number struct {
	node
	text  string
	value float64
}

// Float64 returns the value of n. Literals out of the range of a float64
// decode to ±Inf, or to 0 if too small.
func (n *Number) Float64() float64 { return n.value }

// Text returns the source text of n.
func (n *Number) Text() string { return n.text }

// JSON satisfies the Value interface.
func (n *Number) JSON() string { return n.text }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	node
	value bool
}

// Value returns the Boolean value of b.
func (b *Bool) Value() bool { return b.value }

// JSON satisfies the Value interface.
func (b *Bool) JSON() string {
	if b.value {
		return "true"
	}
	return "false"
}

// A String is a string value.
type String struct {
	node
	value string
}

// Value returns the decoded contents of s.
func (s *String) Value() string { return s.value }

// JSON satisfies the Value interface.
func (s *String) JSON() string { return jsonpos.Quote(s.value) }

// Null represents the null constant.
type Null struct{ node }

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// Plain converts v into plain Go values: nil, bool, float64, string, []any,
// and map[string]any.
func Plain(v Value) any {
	switch t := v.(type) {
	case *Null:
		return nil
	case *Bool:
		return t.value
	case *Number:
		return t.value
	case *String:
		return t.value
	case *Array:
		out := make([]any, len(t.Values))
		for i, elt := range t.Values {
			out[i] = Plain(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, len(t.Members))
		for _, m := range t.Members {
			out[m.Key] = Plain(m.Value)
		}
		return out
	default:
		return nil
	}
}
