// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/navdb/internal/escape"
	"go4.org/mem"
)

// ErrIllegalCharacter is reported (wrapped) by the Scanner when the input
// contains text that matches no lexical rule.
var ErrIllegalCharacter = errors.New("illegal character")

// A Scanner reads lexical tokens from an input stream.  Each call to Next
// advances the scanner to the next token, or reports an error.
//
// A Scanner holds one token at a time: advancing replaces the current token.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // text of the current token
	tok Token
	err error

	last int // size in bytes of last-read input rune

	// Line offsets (0-based) of the current token and the read position.
	pline, eline int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF and the current token has
// kind None. A lexical error wraps ErrIllegalCharacter.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.err = nil
	s.tok = Token{}
	s.pline = s.eline

	for {
		ch, err := s.rune()
		if err != nil {
			return s.setErr(err) // including io.EOF
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.eline++
			}
			s.pline = s.eline
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			s.tok = Token{Kind: k}
			return nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber(ch)
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle constants: true, false
		var want mem.RO
		switch ch {
		case 't':
			s.tok = BoolToken(true)
			want = mem.S("true")
		case 'f':
			s.tok = BoolToken(false)
			want = mem.S("false")
		default:
			return s.failf("unexpected %q", ch)
		}
		if err := s.scanName(ch); err != nil {
			return err
		} else if got := mem.B(s.buf.Bytes()); !got.Equal(want) {
			return s.failf("unknown constant %q", got.StringCopy())
		}
		return nil // OK, token is already set
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Line returns the 1-based line number of the current token. After an error
// or at the end of input, it is the line where scanning stopped.
func (s *Scanner) Line() int { return s.pline + 1 }

func (s *Scanner) scanString() error {
	for {
		ch, err := s.rune()
		if err != nil {
			return s.fail(err)
		} else if ch == '"' {
			break
		} else if ch == '\\' {
			// Check the escape here so that an error reports the right line.
			next, err := s.rune()
			if err != nil {
				return s.fail(err)
			} else if next >= utf8.RuneSelf || !escape.IsEscape(byte(next)) {
				return s.failf("invalid %q after escape", next)
			}
			s.buf.WriteRune(ch)
			s.buf.WriteRune(next)
		} else if ch < ' ' {
			return s.failf("unescaped control %q", ch)
		} else if ch == utf8.RuneError && s.last == 1 {
			return s.failf("invalid UTF-8 encoding")
		} else {
			s.buf.WriteRune(ch)
		}
	}
	dec, err := escape.Unquote(mem.B(s.buf.Bytes()))
	if err != nil {
		return s.failf("invalid string: %v", err)
	}
	s.tok = StringToken(string(dec))
	return nil
}

func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
	}

	// Consume the remainder of an integer.
	_, ch, err := s.readWhile(isDigit)

	// Check for extra leading zeroes: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.buf.Bytes()) {
		return s.failf("extra leading zeroes")
	}
	if err == io.EOF {
		return s.setNumber()
	} else if err != nil {
		return s.setErr(err)
	}

	// If a decimal point follows, consume a fractional part.
	if ch == '.' {
		s.buf.WriteRune(ch)
		var nr int
		nr, ch, err = s.readWhile(isDigit)
		if nr == 0 {
			return s.failf("no digits after decimal point")
		} else if err == io.EOF {
			return s.setNumber()
		} else if err != nil {
			return s.setErr(err)
		}
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		return s.setNumber()
	}

	s.buf.WriteRune(ch)
	ch, err = s.require(isExpStart, "sign or digit")
	if err != nil {
		return err
	}
	s.buf.WriteRune(ch)
	nr, _, err := s.readWhile(isDigit)
	if nr == 0 && (ch == '-' || ch == '+') {
		// It's OK to have no digits if the previous rune was not a sign,
		// otherwise we have to have at least one.
		return s.failf("missing exponent digits")
	} else if err == io.EOF {
		return s.setNumber()
	} else if err != nil {
		return s.setErr(err)
	}
	s.unrune()
	return s.setNumber()
}

func (s *Scanner) setNumber() error {
	v, err := strconv.ParseFloat(s.buf.String(), 64)
	if err != nil {
		return s.failf("invalid number %q", s.buf.String())
	}
	s.tok = NumberToken(v)
	return nil
}

func (s *Scanner) scanName(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNameRune)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return s.setErr(err)
	}
	s.unrune()
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	return ch, err
}

func (s *Scanner) unrune() {
	if s.last != 0 {
		s.last = 0
		s.r.UnreadRune()
	}
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err == io.EOF {
		return 0, s.failf("want %s, got end of input", label)
	} else if err != nil {
		return 0, s.setErr(err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf("got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile consumes runes matching f from the input until EOF or until a rune
// not matching f is found. The first non-matching rune (if any) is returned.
// It is the caller's responsibility to unread this rune, if desired.
// The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

// lineError is a lexical error annotated with the line where it occurred.
type lineError struct {
	line int
	err  error
}

func (e lineError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.err.Error(), e.line)
}

func (e lineError) Unwrap() []error { return []error{ErrIllegalCharacter, e.err} }

func (s *Scanner) setErr(err error) error {
	s.err = err
	s.pline = s.eline
	return err
}

// fail reports err from reading inside a token. End of input there is a
// lexical error rather than the end of the stream.
func (s *Scanner) fail(err error) error {
	if err == io.EOF {
		return s.failf("unexpected end of input")
	}
	return s.setErr(err)
}

func (s *Scanner) failf(msg string, args ...any) error {
	s.tok = Token{}
	return s.setErr(lineError{s.eline + 1, fmt.Errorf(msg, args...)})
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Kind{BeginObject, EndObject, BeginArray, EndArray, ValueSep, NameSep}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return None, false
}
