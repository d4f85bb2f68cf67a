// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/navdb"
	"github.com/google/go-cmp/cmp"
)

// scanAll returns the kinds of all the tokens in input.
func scanAll(t *testing.T, input string) ([]navdb.Kind, error) {
	t.Helper()
	var got []navdb.Kind
	s := navdb.NewScanner(strings.NewReader(input))
	for s.Next() == nil {
		got = append(got, s.Token().Kind)
	}
	if s.Token().Kind != navdb.None {
		t.Errorf("Token after %v: got %v, want %v", s.Err(), s.Token(), navdb.None)
	}
	return got, s.Err()
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []navdb.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false", []navdb.Kind{navdb.Bool, navdb.Bool}},

		// Punctuation
		{"{ [ ] } , :", []navdb.Kind{
			navdb.BeginObject, navdb.BeginArray, navdb.EndArray, navdb.EndObject, navdb.ValueSep, navdb.NameSep,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []navdb.Kind{navdb.String, navdb.String, navdb.String}},
		{`"\"\\\/\b\f\n\r\t"`, []navdb.Kind{navdb.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 1e5`, []navdb.Kind{
			navdb.Number, navdb.Number, navdb.Number, navdb.Number,
			navdb.Number, navdb.Number, navdb.Number, navdb.Number,
		}},

		// Mixed types
		{`{"name":"A","latitude":1.5}`, []navdb.Kind{
			navdb.BeginObject,
			navdb.String, navdb.NameSep, navdb.String, navdb.ValueSep,
			navdb.String, navdb.NameSep, navdb.Number,
			navdb.EndObject,
		}},
		{`["a",1,true
       false{"b"}]
       `, []navdb.Kind{
			navdb.BeginArray, navdb.String, navdb.ValueSep, navdb.Number, navdb.ValueSep, navdb.Bool,
			navdb.Bool, navdb.BeginObject, navdb.String, navdb.EndObject, navdb.EndArray,
		}},
	}

	for _, test := range tests {
		got, err := scanAll(t, test.input)
		if err != io.EOF {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerValues(t *testing.T) {
	tests := []struct {
		input string
		want  navdb.Token
	}{
		{`"a\tb c\n"`, navdb.StringToken("a\tb c\n")},
		{`"say \"hi\" \/ \\"`, navdb.StringToken(`say "hi" / \`)},
		{`"Zürich ☃"`, navdb.StringToken("Zürich ☃")},
		{`""`, navdb.StringToken("")},
		{`-15`, navdb.NumberToken(-15)},
		{`0`, navdb.NumberToken(0)},
		{`49.8728`, navdb.NumberToken(49.8728)},
		{`3.25e-5`, navdb.NumberToken(3.25e-5)},
		{`1E+06`, navdb.NumberToken(1e6)},
		{`true`, navdb.BoolToken(true)},
		{`false`, navdb.BoolToken(false)},
		{`:`, navdb.Token{Kind: navdb.NameSep}},
	}
	for _, test := range tests {
		s := navdb.NewScanner(strings.NewReader(test.input))
		if err := s.Next(); err != nil {
			t.Errorf("Next %#q: unexpected error: %v", test.input, err)
			continue
		}
		got := s.Token()
		if got.Kind != test.want.Kind || got.Text() != test.want.Text() ||
			got.Float64() != test.want.Float64() || got.Bool() != test.want.Bool() {
			t.Errorf("Next %#q: got %v, want %v", test.input, got, test.want)
		}
		if err := s.Next(); err != io.EOF {
			t.Errorf("Next %#q: got %v, want EOF", test.input, err)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  []navdb.Kind // tokens before the error
		line  int
	}{
		{"null", nil, 1},
		{"truth", nil, 1},
		{"tru", nil, 1},
		{"@", nil, 1},
		{"{\n\n  x", []navdb.Kind{navdb.BeginObject}, 3},
		{"1 2.0 forthright", []navdb.Kind{navdb.Number, navdb.Number}, 1},

		// Strings
		{`"what did you`, nil, 1},
		{"\"line\nbreak\"", nil, 1},
		{`"\u0041"`, nil, 1},
		{`"\x"`, nil, 1},
		{"[\n\"a\",\n\"b\\q\"]", []navdb.Kind{navdb.BeginArray, navdb.String, navdb.ValueSep}, 3},
		{"\"bad \xff byte\"", nil, 1},

		// Numbers
		{"-", nil, 1},
		{"-x", nil, 1},
		{"01", nil, 1},
		{"-01.5", nil, 1},
		{"1.", nil, 1},
		{"1.x", nil, 1},
		{"1e", nil, 1},
		{"1e+", nil, 1},
		{"2e-x", nil, 1},
		{"1e999", nil, 1},
		{"+1", nil, 1},
	}
	for _, test := range tests {
		var got []navdb.Kind
		s := navdb.NewScanner(strings.NewReader(test.input))
		var err error
		for {
			if err = s.Next(); err != nil {
				break
			}
			got = append(got, s.Token().Kind)
		}
		if !errors.Is(err, navdb.ErrIllegalCharacter) {
			t.Errorf("Input %#q: got error %v, want %v", test.input, err, navdb.ErrIllegalCharacter)
		} else {
			t.Logf("Input %#q: got expected error: %v", test.input, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if s.Line() != test.line {
			t.Errorf("Input %#q: error line %d, want %d", test.input, s.Line(), test.line)
		}
	}
}

func TestScannerLine(t *testing.T) {
	type tokLine struct {
		Kind navdb.Kind
		Line int
	}
	tests := []struct {
		input string
		want  []tokLine
		eof   int
	}{
		{"", nil, 1},
		{"{ }", []tokLine{{navdb.BeginObject, 1}, {navdb.EndObject, 1}}, 1},
		{"{\n}\n", []tokLine{{navdb.BeginObject, 1}, {navdb.EndObject, 2}}, 3},
		{"\n\n  true\n\r\n false", []tokLine{{navdb.Bool, 3}, {navdb.Bool, 5}}, 5},
		{"[1,\n2\n]", []tokLine{
			{navdb.BeginArray, 1}, {navdb.Number, 1}, {navdb.ValueSep, 1},
			{navdb.Number, 2}, {navdb.EndArray, 3},
		}, 3},
	}
	for _, tc := range tests {
		var got []tokLine
		s := navdb.NewScanner(strings.NewReader(tc.input))
		for s.Next() == nil {
			got = append(got, tokLine{s.Token().Kind, s.Line()})
		}
		if s.Err() != io.EOF {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
		if s.Line() != tc.eof {
			t.Errorf("Input %#q: line at EOF is %d, want %d", tc.input, s.Line(), tc.eof)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", "\"\u2028 \u2029 \ufffd\""},
		{"\b\f\r", `"\b\f\r"`},
	}
	for _, test := range tests {
		got, err := navdb.Quote(test.input)
		if err != nil {
			t.Errorf("Quote(%#q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}

	for _, bad := range []string{"\x00", "This is the end\v", "<\x1e>", "\xff"} {
		if got, err := navdb.Quote(bad); err == nil {
			t.Errorf("Quote(%#q): got %#q, want error", bad, got)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\tabc\n"`, "\tabc\n", false},       // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, ``, true},            // Unicode escapes are not supported
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
		{`"a\/b"`, `a/b`, false},              // ok
		{`"a\qb"`, ``, true},                  // invalid escape
		{`"a\"`, ``, true},                    // incomplete escape
	}

	for _, test := range tests {
		got, err := navdb.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}
