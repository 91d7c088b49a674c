// Package testutil defines support code for unit tests.
package testutil

import (
	"errors"
	"testing"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
	"github.com/RelentlessResults/vscode-LSP/ast"
)

// MustParse parses text and fails the test if it is not valid.
func MustParse(t testing.TB, text string) *ast.Document {
	t.Helper()
	doc, err := ast.Parse(text)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", text, err)
	}
	return doc
}

// MustFail parses text and fails the test unless parsing reports a
// *jsonpos.SyntaxError, which is returned.
func MustFail(t testing.TB, text string) *jsonpos.SyntaxError {
	t.Helper()
	doc, err := ast.Parse(text)
	if err == nil {
		t.Fatalf("Parse %q: got %s, want error", text, doc.Root.JSON())
	}
	var serr *jsonpos.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse %q: error is %T, want *jsonpos.SyntaxError", text, err)
	}
	return serr
}
