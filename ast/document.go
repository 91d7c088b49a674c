// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"maps"
	"slices"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
)

// A Document is the result of a successful parse: the value tree, plus a
// table of the source spans of all object keys.
type Document struct {
	Root Value

	// Keys maps the JSON Pointer of each object member to the span of its
	// key, from the offset just inside the opening quotation mark to the
	// offset just past the closing quotation mark. There is exactly one entry
	// per member of every object in the tree.
	Keys map[string]jsonpos.Span

	text string
}

// Text returns the source text of d.
func (d *Document) Text() string { return d.text }

// Position reports the line and column of offset in the source of d.
func (d *Document) Position(offset int) jsonpos.LineCol {
	return jsonpos.Position(d.text, offset)
}

// Locate returns the full location of span in the source of d.
func (d *Document) Locate(span jsonpos.Span) jsonpos.Location {
	return jsonpos.Location{
		Span:  span,
		First: d.Position(span.Pos),
		Last:  d.Position(span.End),
	}
}

// KeyLocation reports the location of the key of the member with the given
// pointer, and whether such a member exists.
func (d *Document) KeyLocation(ptr string) (jsonpos.Location, bool) {
	span, ok := d.Keys[ptr]
	if !ok {
		return jsonpos.Location{}, false
	}
	return d.Locate(span), true
}

// KeyPointers returns the pointers of all members in d, in lexicographic
// order.
func (d *Document) KeyPointers() []string {
	return slices.Sorted(maps.Keys(d.Keys))
}
