// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of database string values.
//
// The string grammar is a subset of JSON: the short escapes \" \\ \/ \b \f
// \n \r \t are supported, but Unicode escapes (\uXXXX) are not.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// ErrUnicodeEscape is reported for a \u escape, which the grammar excludes.
var ErrUnicodeEscape = errors.New("unicode escapes are not supported")

// Unquote decodes a byte slice containing the encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Unquote reports an error for an incomplete or unsupported escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b, ok := unescape(src.At(0))
		if !ok {
			if src.At(0) == 'u' {
				return nil, ErrUnicodeEscape
			}
			return nil, fmt.Errorf("invalid %q after escape", src.At(0))
		}
		dec = append(dec, b)
		src = src.SliceFrom(1)

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// IsEscape reports whether b may follow a backslash in a string.
func IsEscape(b byte) bool {
	_, ok := unescape(b)
	return ok
}

func unescape(b byte) (byte, bool) {
	switch b {
	case '"', '\\', '/':
		return b, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}
