// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes a string to escape characters for inclusion in a string
// value. It reports an error if src contains a control character that has
// no short escape, or is not valid UTF-8.
func Quote(src mem.RO) ([]byte, error) {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r == utf8.RuneError && n <= 1 {
			return nil, fmt.Errorf("invalid UTF-8 at %q", src.StringCopy())
		}
		if r < ' ' {
			b := controlEsc[r]
			if b == 0 {
				return nil, fmt.Errorf("cannot escape control %q", r)
			}
			buf = append(buf, '\\', b)
		} else if r == '\\' || r == '"' {
			buf = append(buf, '\\', byte(r))
		} else {
			buf = mem.Append(buf, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return append(buf, '"'), nil
}
