// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is reported by Read for a Mode other than Merge or Replace.
var ErrUnknownMode = errors.New("unknown merge mode")

// An ErrorCode identifies the expectation that a database document failed to
// meet. Every code except NoError is an error.
type ErrorCode byte

// Constants defining the valid ErrorCode values.
const (
	NoError ErrorCode = iota
	ExpectBeginObject
	ExpectDbNameString
	ExpectNameSeparator
	ExpectDbArrayBegin
	ExpectDbObjectBegin
	ExpectDbObjectEnd
	ExpectAttrName
	ExpectAttrValue
	ExpectValueSeparator
	IllegalCharacter
)

var codeStr = [...]string{
	NoError:              "no error",
	ExpectBeginObject:    "expecting beginning of an object",
	ExpectDbNameString:   "expecting a database name",
	ExpectNameSeparator:  "expecting a name separator",
	ExpectDbArrayBegin:   "expecting a database element array",
	ExpectDbObjectBegin:  "expecting a database object begin",
	ExpectDbObjectEnd:    "expecting a database object end",
	ExpectAttrName:       "expecting an attribute name",
	ExpectAttrValue:      "expecting an attribute value",
	ExpectValueSeparator: "expecting a value separator",
	IllegalCharacter:     "illegal character",
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeStr) {
		return "unknown error"
	}
	return codeStr[c]
}

// Error satisfies the error interface, so that a code can be matched with
// errors.Is against the error returned by Read.
func (c ErrorCode) Error() string { return c.String() }

// ReadError is the concrete type of errors reported by Read when the input
// does not match the database grammar.
type ReadError struct {
	Code ErrorCode
	Line int  // 1-based line number of the offending input
	Got  Kind // the token that did not meet the expectation

	err error // for IllegalCharacter, the lexical error
}

// Error satisfies the error interface.
func (e *ReadError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("at line %d: %s: %v", e.Line, e.Code, e.err)
	}
	return fmt.Sprintf("at line %d: %s, got %v", e.Line, e.Code, e.Got)
}

// Unwrap supports error wrapping. A *ReadError wraps its Code.
func (e *ReadError) Unwrap() []error {
	if e.err != nil {
		return []error{e.Code, e.err}
	}
	return []error{e.Code}
}
