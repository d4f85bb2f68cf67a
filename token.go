// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the database grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	None        Kind = iota // no token: before the first token, and at end of input
	BeginObject             // left brace "{"
	EndObject               // right brace "}"
	BeginArray              // left square bracket "["
	EndArray                // right square bracket "]"
	NameSep                 // colon ":"
	ValueSep                // comma ","
	String                  // quoted string
	Number                  // number
	Bool                    // constant: true or false
)

var kindStr = [...]string{
	None:        "end of input",
	BeginObject: `"{"`,
	EndObject:   `"}"`,
	BeginArray:  `"["`,
	EndArray:    `"]"`,
	NameSep:     `":"`,
	ValueSep:    `","`,
	String:      "string",
	Number:      "number",
	Bool:        "boolean",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid token"
	}
	return kindStr[v]
}

// IsValue reports whether k is a kind of token that carries a value.
func (k Kind) IsValue() bool { return k == String || k == Number || k == Bool }

// A Token is a single lexical unit. Value tokens carry their decoded payload;
// the accessor for a payload of a different kind returns a zero value.
type Token struct {
	Kind Kind

	text string  // String
	num  float64 // Number
	flag bool    // Bool
}

// StringToken returns a String token with the given decoded text.
func StringToken(s string) Token { return Token{Kind: String, text: s} }

// NumberToken returns a Number token with the given value.
func NumberToken(v float64) Token { return Token{Kind: Number, num: v} }

// BoolToken returns a Bool token with the given value.
func BoolToken(v bool) Token { return Token{Kind: Bool, flag: v} }

// Text returns the decoded text of a String token.
func (t Token) Text() string { return t.text }

// Float64 returns the value of a Number token.
func (t Token) Float64() float64 { return t.num }

// Bool returns the value of a Bool token.
func (t Token) Bool() bool { return t.flag }

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.text)
	case Number:
		return "number " + strconv.FormatFloat(t.num, 'g', -1, 64)
	case Bool:
		return "boolean " + strconv.FormatBool(t.flag)
	default:
		return t.Kind.String()
	}
}
