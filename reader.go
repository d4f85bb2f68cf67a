// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/creachadair/navdb/db"
)

// A Mode selects how Read combines decoded records with the existing
// contents of its target collections.
type Mode byte

// Constants defining the valid Mode values.
const (
	Merge   Mode = iota // keep existing entries
	Replace             // clear the waypoint collection first
)

func (m Mode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// A WaypointSink is a collection that accepts decoded waypoints.
// [*db.WaypointDB] implements this interface.
type WaypointSink interface {
	Add(db.Waypoint) bool
	Reset()
}

// A POISink is a collection that accepts decoded points of interest.
// [*db.POIDB] implements this interface.
type POISink interface {
	Add(db.POI) bool
}

// A Reader decodes a database document from an input stream.
type Reader struct {
	s   *Scanner
	log *log.Logger
}

// NewReader constructs a Reader that consumes input from r.
func NewReader(r io.Reader) *Reader { return &Reader{s: NewScanner(r)} }

// SetLogger directs diagnostics from r to lg. If lg == nil, diagnostics are
// written to the default logger.
func (r *Reader) SetLogger(lg *log.Logger) { r.log = lg }

func (r *Reader) logf(msg string, args ...any) {
	lg := r.log
	if lg == nil {
		lg = log.Default()
	}
	lg.Printf(msg, args...)
}

// Read decodes the input of r and adds the records it contains to wps and
// pois. In Replace mode, wps is reset before any input is consumed; pois is
// never reset. An unknown mode reports ErrUnknownMode without reading.
//
// Read stops at the first input that does not match the grammar, and reports
// an error of concrete type [*ReadError]. Records completed before that point
// remain in the collections. A repeated attribute within an object fails
// with ExpectAttrValue. Records with an empty name are logged and discarded
// without stopping the read.
func (r *Reader) Read(wps WaypointSink, pois POISink, mode Mode) error {
	switch mode {
	case Merge:
		r.logf("merging into waypoint database")
	case Replace:
		wps.Reset()
		r.logf("replacing waypoint database")
	default:
		r.logf("unknown merge mode %v", mode)
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	d := &decoder{r: r, wps: wps, pois: pois}
	for {
		err := r.s.Next()
		if errors.Is(err, ErrIllegalCharacter) {
			return r.fail(&ReadError{Code: IllegalCharacter, Line: r.s.Line(), err: err})
		} else if err != nil && err != io.EOF {
			r.logf("read failed: %v", err)
			return fmt.Errorf("reading input: %w", err)
		}

		// At the end of input the token has kind None, which only the final
		// state accepts.
		tok := r.s.Token()
		if code := d.step(tok); code != NoError {
			return r.fail(&ReadError{Code: code, Line: r.s.Line(), Got: tok.Kind})
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (r *Reader) fail(e *ReadError) error {
	r.logf("%s at line %d", e.Code, e.Line)
	return e
}

// A state is a position in the document grammar. Each state names the input
// it is waiting for; separators that occur in more than one context have a
// distinct state per context.
type state byte

const (
	waitBeginObject      state = iota // document "{"
	waitDBName                        // "waypoints" or "pois"
	waitDBNameSep                     // ":" after an array name
	waitDBArrayBegin                  // "[" opening an array
	waitFirstObjectBegin              // "{" of the first object, or "]" of an empty array
	waitObjectBegin                   // "{" of a subsequent object
	waitAttrName                      // attribute name
	waitAttrNameSep                   // ":" after an attribute name
	waitValue                         // attribute value
	waitAttrSep                       // "," between attributes of an incomplete object
	waitObjectEnd                     // "}" of a complete object
	waitObjectSep                     // "," between objects, or "]" ending an array
	waitDBSep                         // "," between arrays, or "}" ending the document
	waitCompletion                    // end of input
)

// A decoder holds the grammar state of a single Read.
type decoder struct {
	r    *Reader
	wps  WaypointSink
	pois POISink

	state state
	array Array     // the array being read
	attr  Attribute // the attribute awaiting a value
	rec   Record    // the object under construction
}

// step advances the grammar with tok, and reports the unmet expectation if
// tok is not acceptable in the current state.
func (d *decoder) step(tok Token) ErrorCode {
	switch d.state {
	case waitBeginObject:
		return d.expect(tok, BeginObject, waitDBName, ExpectBeginObject)

	case waitDBName:
		if tok.Kind != String {
			return ExpectDbNameString
		}
		d.array, d.rec = NoArray, Record{}
		arr, ok := LookupArray(tok.Text())
		if !ok {
			return ExpectDbNameString
		}
		d.array = arr
		d.state = waitDBNameSep

	case waitDBNameSep:
		return d.expect(tok, NameSep, waitDBArrayBegin, ExpectNameSeparator)

	case waitDBArrayBegin:
		return d.expect(tok, BeginArray, waitFirstObjectBegin, ExpectDbArrayBegin)

	case waitFirstObjectBegin, waitObjectBegin:
		if tok.Kind == EndArray && d.state == waitFirstObjectBegin {
			d.state = waitDBSep // empty array
			return NoError
		} else if tok.Kind != BeginObject {
			return ExpectDbObjectBegin
		}
		d.rec = Record{}
		d.state = waitAttrName

	case waitAttrName:
		if tok.Kind != String {
			return ExpectAttrName
		}
		a, ok := LookupAttribute(tok.Text())
		if !ok {
			return ExpectAttrName
		}
		d.attr = a
		d.state = waitAttrNameSep

	case waitAttrNameSep:
		return d.expect(tok, NameSep, waitValue, ExpectNameSeparator)

	case waitValue:
		rec, err := d.rec.Set(d.attr, tok)
		if errors.Is(err, ErrDuplicateAttribute) {
			d.r.logf("line %d: repeated attribute %q in %s object", d.r.s.Line(), d.attr.Name, d.array)
		}
		if err != nil {
			return ExpectAttrValue
		}
		d.rec = rec
		if rec.Complete(d.array) {
			d.commit()
			d.state = waitObjectEnd
		} else {
			d.state = waitAttrSep
		}

	case waitAttrSep:
		return d.expect(tok, ValueSep, waitAttrName, ExpectValueSeparator)

	case waitObjectEnd:
		return d.expect(tok, EndObject, waitObjectSep, ExpectDbObjectEnd)

	case waitObjectSep:
		switch tok.Kind {
		case ValueSep:
			d.state = waitObjectBegin
		case EndArray:
			d.state = waitDBSep
		default:
			return ExpectValueSeparator
		}

	case waitDBSep:
		switch tok.Kind {
		case ValueSep:
			d.state = waitDBName
		case EndObject:
			d.state = waitCompletion
		default:
			return ExpectValueSeparator
		}

	case waitCompletion:
		// Any remaining tokens are ignored.
	}
	return NoError
}

// expect moves to next if tok has kind want, or else reports code.
func (d *decoder) expect(tok Token, want Kind, next state, code ErrorCode) ErrorCode {
	if tok.Kind != want {
		return code
	}
	d.state = next
	return NoError
}

// commit adds the completed object under construction to its collection.
func (d *decoder) commit() {
	line := d.r.s.Line()
	switch d.array {
	case Waypoints:
		wp, err := d.rec.Waypoint()
		if err != nil {
			d.r.logf("warning: line %d: invalid waypoint: %v", line, err)
			return
		}
		d.wps.Add(wp)
	case POIs:
		p, err := d.rec.POI()
		if err != nil {
			d.r.logf("warning: line %d: invalid point of interest: %v", line, err)
			return
		}
		d.pois.Add(p)
	}
}
