// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb_test

import (
	"errors"
	"testing"

	"github.com/creachadair/navdb"
	"github.com/creachadair/navdb/db"
	"github.com/google/go-cmp/cmp"
)

func TestLookupAttribute(t *testing.T) {
	tests := []struct {
		name string
		want navdb.Attribute
		ok   bool
	}{
		{"name", navdb.Attribute{Name: "name", Kind: navdb.String, ID: navdb.AttrName}, true},
		{"latitude", navdb.Attribute{Name: "latitude", Kind: navdb.Number, ID: navdb.AttrLatitude}, true},
		{"longitude", navdb.Attribute{Name: "longitude", Kind: navdb.Number, ID: navdb.AttrLongitude}, true},
		{"type", navdb.Attribute{Name: "type", Kind: navdb.String, ID: navdb.AttrType}, true},
		{"description", navdb.Attribute{Name: "description", Kind: navdb.String, ID: navdb.AttrDescription}, true},
		{"", navdb.Attribute{ID: navdb.AttrInvalid}, false},
		{"Name", navdb.Attribute{ID: navdb.AttrInvalid}, false},
		{"lat", navdb.Attribute{ID: navdb.AttrInvalid}, false},
		{"waypoints", navdb.Attribute{ID: navdb.AttrInvalid}, false},
	}
	for _, test := range tests {
		got, ok := navdb.LookupAttribute(test.name)
		if ok != test.ok {
			t.Errorf("LookupAttribute(%q): got ok=%v, want %v", test.name, ok, test.ok)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("LookupAttribute(%q) (-want, +got):\n%s", test.name, diff)
		}
		if ok && got.ID.String() != test.name {
			t.Errorf("ID(%q).String(): got %q", test.name, got.ID.String())
		}
	}
}

func TestLookupArray(t *testing.T) {
	for name, want := range map[string]navdb.Array{
		"waypoints": navdb.Waypoints,
		"pois":      navdb.POIs,
		"routes":    navdb.NoArray,
		"POIS":      navdb.NoArray,
	} {
		got, ok := navdb.LookupArray(name)
		if got != want || ok != (want != navdb.NoArray) {
			t.Errorf("LookupArray(%q): got %v, %v; want %v", name, got, ok, want)
		}
	}
}

func mustAttr(t *testing.T, name string) navdb.Attribute {
	t.Helper()
	a, ok := navdb.LookupAttribute(name)
	if !ok {
		t.Fatalf("LookupAttribute(%q) failed", name)
	}
	return a
}

func TestRecordSet(t *testing.T) {
	name, lat, lon := mustAttr(t, "name"), mustAttr(t, "latitude"), mustAttr(t, "longitude")
	typ, desc := mustAttr(t, "type"), mustAttr(t, "description")

	var r navdb.Record
	steps := []struct {
		attr navdb.Attribute
		tok  navdb.Token
	}{
		{name, navdb.StringToken("Mensa")},
		{lat, navdb.NumberToken(49.8766)},
		{lon, navdb.NumberToken(8.6538)},
		{typ, navdb.StringToken("restaurant")},
		{desc, navdb.StringToken("Lunch")},
	}
	for i, step := range steps {
		next, err := r.Set(step.attr, step.tok)
		if err != nil {
			t.Fatalf("Set %v: unexpected error: %v", step.attr.ID, err)
		}
		if r.Has(step.attr.ID) {
			t.Errorf("Set %v modified its receiver", step.attr.ID)
		}
		if !next.Has(step.attr.ID) {
			t.Errorf("Set %v: attribute not recorded", step.attr.ID)
		}
		if got, want := next.Complete(navdb.Waypoints), i >= 2; got != want {
			t.Errorf("After %v: Complete(waypoints) = %v, want %v", step.attr.ID, got, want)
		}
		if got, want := next.Complete(navdb.POIs), i == len(steps)-1; got != want {
			t.Errorf("After %v: Complete(pois) = %v, want %v", step.attr.ID, got, want)
		}
		r = next
	}
	if !r.Valid() {
		t.Error("Record is invalid after distinct attributes")
	}
	if r.Complete(navdb.NoArray) {
		t.Error("Record is complete for no array")
	}

	got, err := r.POI()
	if err != nil {
		t.Fatalf("POI: unexpected error: %v", err)
	}
	want := db.POI{
		Waypoint:    db.Waypoint{Name: "Mensa", Latitude: 49.8766, Longitude: 8.6538},
		Category:    db.Restaurant,
		Description: "Lunch",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("POI (-want, +got):\n%s", diff)
	}

	t.Run("Duplicate", func(t *testing.T) {
		dup, err := r.Set(name, navdb.StringToken("Other"))
		if !errors.Is(err, navdb.ErrDuplicateAttribute) {
			t.Errorf("Set duplicate: got error %v, want %v", err, navdb.ErrDuplicateAttribute)
		}
		if dup.Valid() {
			t.Error("Record is valid after a duplicate attribute")
		}
		if dup.Name != "Mensa" {
			t.Errorf("Duplicate value was stored: name is %q", dup.Name)
		}
		if !r.Valid() {
			t.Error("Set duplicate modified its receiver")
		}
	})

	t.Run("WrongKind", func(t *testing.T) {
		for _, tc := range []struct {
			attr navdb.Attribute
			tok  navdb.Token
		}{
			{name, navdb.NumberToken(1)},
			{lat, navdb.StringToken("1")},
			{lon, navdb.BoolToken(true)},
			{typ, navdb.Token{Kind: navdb.BeginObject}},
			{desc, navdb.Token{}},
			{navdb.Attribute{}, navdb.StringToken("x")},
		} {
			var empty navdb.Record
			got, err := empty.Set(tc.attr, tc.tok)
			if !errors.Is(err, navdb.ExpectAttrValue) {
				t.Errorf("Set %v to %v: got error %v, want %v", tc.attr.ID, tc.tok, err, navdb.ExpectAttrValue)
			}
			if diff := cmp.Diff(empty, got, cmp.AllowUnexported(navdb.Record{})); diff != "" {
				t.Errorf("Set %v changed the record (-want, +got):\n%s", tc.attr.ID, diff)
			}
		}
	})
}

func TestRecordWaypoint(t *testing.T) {
	var r navdb.Record
	if _, err := r.Waypoint(); !errors.Is(err, db.ErrEmptyName) {
		t.Errorf("Waypoint: got error %v, want %v", err, db.ErrEmptyName)
	}
	r, _ = r.Set(mustAttr(t, "name"), navdb.StringToken("A"))
	r, _ = r.Set(mustAttr(t, "longitude"), navdb.NumberToken(-3))
	got, err := r.Waypoint()
	if err != nil {
		t.Fatalf("Waypoint: unexpected error: %v", err)
	}
	if diff := cmp.Diff(db.Waypoint{Name: "A", Longitude: -3}, got); diff != "" {
		t.Errorf("Waypoint (-want, +got):\n%s", diff)
	}
}
