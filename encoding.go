// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonpos

import (
	"errors"
	"strings"

	"github.com/RelentlessResults/vscode-LSP/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. Quotation marks, backslashes,
// and the control characters \f \b \n \r \t are escaped, and double
// quotation marks are added. Other characters are copied unchanged.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents, by the
// same rules the parser applies to string literals. The literal must span all
// of src.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	c := NewCursor(src)
	c.Next() // the opening quotation mark
	s, err := c.ScanString()
	if err != nil {
		return "", err
	} else if !c.AtEnd() {
		return "", c.Unexpected()
	}
	return s, nil
}

// EscapePointerSegment escapes s for use as one segment of a JSON Pointer
// (RFC 6901). Each "~" becomes "~0", then each "/" becomes "~1".
func EscapePointerSegment(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// UnescapePointerSegment reverses EscapePointerSegment. It does not check
// that s is a well-formed segment; see the pointer package for that.
func UnescapePointerSegment(s string) string { return unescaper.Replace(s) }

var unescaper = strings.NewReplacer("~1", "/", "~0", "~")
