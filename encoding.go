// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"errors"
	"strings"

	"github.com/creachadair/navdb/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a string value. The contents are escaped and double
// quotation marks are added. Quote reports an error if src contains a control
// character other than \b, \f, \n, \r, \t, since the grammar has no Unicode
// escapes to represent it.
func Quote(src string) (string, error) {
	q, err := escape.Quote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(q), nil
}

// Unquote decodes a string value.  Double quotation marks are removed, and
// escape sequences are replaced with their unescaped equivalents.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
