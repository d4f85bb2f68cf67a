// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"errors"

	"github.com/creachadair/navdb/db"
)

// ErrDuplicateAttribute is reported by Record.Set when an attribute occurs
// more than once in the same object.
var ErrDuplicateAttribute = errors.New("duplicate attribute")

// An AttrID identifies an attribute of a database object.
type AttrID byte

// Constants defining the valid AttrID values.
const (
	AttrInvalid AttrID = iota
	AttrName
	AttrLatitude
	AttrLongitude
	AttrType
	AttrDescription
)

// An Attribute describes a recognized attribute of a database object.
type Attribute struct {
	Name string // the key as written in the document
	Kind Kind   // the kind of token expected for its value
	ID   AttrID
}

var attributes = [...]Attribute{
	{"name", String, AttrName},
	{"latitude", Number, AttrLatitude},
	{"longitude", Number, AttrLongitude},
	{"type", String, AttrType},
	{"description", String, AttrDescription},
}

// LookupAttribute returns the attribute with the given name. The match is
// exact and case-sensitive.
func LookupAttribute(name string) (Attribute, bool) {
	for _, a := range attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{ID: AttrInvalid}, false
}

func (a AttrID) String() string {
	if a == AttrInvalid || int(a) > len(attributes) {
		return "invalid"
	}
	return attributes[a-1].Name
}

// An Array identifies one of the top-level arrays of a database document.
type Array byte

// Constants defining the valid Array values.
const (
	NoArray   Array = iota // not in an array
	Waypoints              // "waypoints"
	POIs                   // "pois"
)

// LookupArray returns the array with the given name.
func LookupArray(name string) (Array, bool) {
	switch name {
	case "waypoints":
		return Waypoints, true
	case "pois":
		return POIs, true
	}
	return NoArray, false
}

func (a Array) String() string {
	switch a {
	case Waypoints:
		return "waypoints"
	case POIs:
		return "pois"
	}
	return "none"
}

// An attrSet is a set of attribute IDs.
type attrSet uint8

func setOf(ids ...AttrID) attrSet {
	var s attrSet
	for _, id := range ids {
		s |= 1 << id
	}
	return s
}

func (s attrSet) has(id AttrID) bool     { return s&(1<<id) != 0 }
func (s attrSet) hasAll(t attrSet) bool  { return s&t == t }
func (s attrSet) with(id AttrID) attrSet { return s | 1<<id }

// Attributes required to complete an object in each array.
var required = [...]attrSet{
	Waypoints: setOf(AttrName, AttrLatitude, AttrLongitude),
	POIs:      setOf(AttrName, AttrLatitude, AttrLongitude, AttrType, AttrDescription),
}

// A Record accumulates the attributes of a single database object. The zero
// value is an empty record.
type Record struct {
	Name        string
	Latitude    float64
	Longitude   float64
	Category    db.Category
	Description string

	seen    attrSet
	invalid bool // an attribute was repeated
}

// Set returns a copy of r with the value of attribute a taken from tok.
//
// If tok is not of the kind a expects, Set returns r unchanged and the error
// ExpectAttrValue. If a was already set in r, the value is discarded and Set
// returns a copy of r marked invalid, with ErrDuplicateAttribute.
func (r Record) Set(a Attribute, tok Token) (Record, error) {
	if a.ID == AttrInvalid || tok.Kind != a.Kind {
		return r, ExpectAttrValue
	}
	if r.seen.has(a.ID) {
		r.invalid = true
		return r, ErrDuplicateAttribute
	}
	switch a.ID {
	case AttrName:
		r.Name = tok.Text()
	case AttrLatitude:
		r.Latitude = tok.Float64()
	case AttrLongitude:
		r.Longitude = tok.Float64()
	case AttrType:
		r.Category = db.ParseCategory(tok.Text())
	case AttrDescription:
		r.Description = tok.Text()
	}
	r.seen = r.seen.with(a.ID)
	return r, nil
}

// Has reports whether attribute id has been set in r.
func (r Record) Has(id AttrID) bool { return r.seen.has(id) }

// Complete reports whether r has every attribute required for an object of
// the given array.
func (r Record) Complete(arr Array) bool {
	if arr != Waypoints && arr != POIs {
		return false
	}
	return r.seen.hasAll(required[arr])
}

// Valid reports whether r is free of repeated attributes.
func (r Record) Valid() bool { return !r.invalid }

// Waypoint constructs a waypoint from r.
func (r Record) Waypoint() (db.Waypoint, error) {
	return db.NewWaypoint(r.Name, r.Latitude, r.Longitude)
}

// POI constructs a point of interest from r.
func (r Record) POI() (db.POI, error) {
	return db.NewPOI(r.Category, r.Name, r.Description, r.Latitude, r.Longitude)
}
