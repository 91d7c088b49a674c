// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonpos_test

import (
	"testing"

	jsonpos "github.com/RelentlessResults/vscode-LSP"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"\f\b\n\r\t", `"\f\b\n\r\t"`},
		{`\"`, `"\\\""`},
		{"ctl\x01", "\"ctl\x01\""},
		{"a/b", `"a/b"`},
		{"ünï", `"ünï"`},
	}
	for _, test := range tests {
		got := jsonpos.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
		dec, err := jsonpos.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): %v", got, err)
		} else if dec != test.input {
			t.Errorf("Unquote(Quote(%q)): got %q", test.input, dec)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"\/"`, "/"},
		{`"\u0041\u00e9x"`, "Aéx"},
		{`"\ud83d\ude00"`, "\xed\xa0\xbd\xed\xb8\x80"},
		{`"a\tb\\c"`, "a\tb\\c"},
	}
	for _, test := range tests {
		got, err := jsonpos.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote(%#q): %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}

	for _, bad := range []string{``, `"`, `abc`, `"\"`, `"\x"`, `"\u12"`, `"\u12z4"`, `"a"b"`} {
		if got, err := jsonpos.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}

func TestUnquoteMatchesParser(t *testing.T) {
	// Unquote decodes with the cursor, so it fails where the parser fails.
	tests := []struct {
		input  string
		kind   jsonpos.ErrorKind
		offset int
	}{
		{`"\x"`, jsonpos.UnexpectedToken, 2},
		{`"\u12z4"`, jsonpos.UnexpectedToken, 5},
		{`"\"`, jsonpos.UnexpectedEnd, 3},
		{`"a"b"`, jsonpos.UnexpectedToken, 3},
	}
	for _, test := range tests {
		_, err := jsonpos.Unquote(test.input)
		serr, ok := err.(*jsonpos.SyntaxError)
		if !ok {
			t.Errorf("Unquote(%#q): got %v, want *SyntaxError", test.input, err)
		} else if serr.Kind != test.kind || serr.Offset != test.offset {
			t.Errorf("Unquote(%#q): got %v at %d, want %v at %d",
				test.input, serr.Kind, serr.Offset, test.kind, test.offset)
		}
	}
}

func TestPointerSegments(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a/b", "a~1b"},
		{"m~n", "m~0n"},
		{"~1", "~01"},
		{"/~", "~1~0"},
		{"~/~/", "~0~1~0~1"},
		{"~0~1", "~00~01"},
	}
	for _, test := range tests {
		got := jsonpos.EscapePointerSegment(test.input)
		if got != test.want {
			t.Errorf("Escape(%q): got %q, want %q", test.input, got, test.want)
		}
		if dec := jsonpos.UnescapePointerSegment(got); dec != test.input {
			t.Errorf("Unescape(%q): got %q, want %q", got, dec, test.input)
		}
	}
}

func TestPointerSegmentRoundTrip(t *testing.T) {
	// Every string over {~, /, 0, 1} up to length 5 survives a round trip.
	const alphabet = "~/01"
	var gen func(prefix string, n int)
	gen = func(prefix string, n int) {
		if got := jsonpos.UnescapePointerSegment(jsonpos.EscapePointerSegment(prefix)); got != prefix {
			t.Errorf("Round trip %q: got %q", prefix, got)
		}
		if n == 0 {
			return
		}
		for i := range len(alphabet) {
			gen(prefix+alphabet[i:i+1], n-1)
		}
	}
	gen("", 5)
}
