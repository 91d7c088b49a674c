// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

// Quote encodes a string as a JSON string literal, with enclosing double
// quotation marks. Only the quotation mark, reverse solidus, and the control
// characters with short escapes (\b \f \n \r \t) are escaped; all other
// bytes are copied through unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(controlEsc) && controlEsc[b] != 0 {
			buf = append(buf, '\\', controlEsc[b])
		} else {
			buf = append(buf, b)
		}
	}
	return append(buf, '"')
}
