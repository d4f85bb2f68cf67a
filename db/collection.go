// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package db

import (
	"iter"

	"github.com/creachadair/mds/omap"
)

// A WaypointDB is a collection of waypoints keyed by name. The zero value is
// ready for use. A WaypointDB is not safe for concurrent use without external
// synchronization.
type WaypointDB struct{ t table[Waypoint] }

// Add adds wp to d and reports whether it was added. If d already contains
// a waypoint with the same name, d is not changed and Add returns false.
func (d *WaypointDB) Add(wp Waypoint) bool { return d.t.add(wp.Name, wp) }

// Lookup returns the waypoint with the given name, if it exists.
func (d *WaypointDB) Lookup(name string) (*Waypoint, bool) { return d.t.lookup(name) }

// Len reports the number of waypoints in d.
func (d *WaypointDB) Len() int { return d.t.len() }

// Reset discards the contents of d.
func (d *WaypointDB) Reset() { d.t.reset() }

// All is a range function over the waypoints of d in order by name.
func (d *WaypointDB) All() iter.Seq[Waypoint] { return d.t.all() }

// A POIDB is a collection of points of interest keyed by name. The zero
// value is ready for use. A POIDB is not safe for concurrent use without
// external synchronization.
type POIDB struct{ t table[POI] }

// Add adds p to d and reports whether it was added. If d already contains a
// point of interest with the same name, d is not changed and Add returns false.
func (d *POIDB) Add(p POI) bool { return d.t.add(p.Name, p) }

// Lookup returns the point of interest with the given name, if it exists.
func (d *POIDB) Lookup(name string) (*POI, bool) { return d.t.lookup(name) }

// Len reports the number of points of interest in d.
func (d *POIDB) Len() int { return d.t.len() }

// Reset discards the contents of d.
func (d *POIDB) Reset() { d.t.reset() }

// All is a range function over the points of interest of d in order by name.
func (d *POIDB) All() iter.Seq[POI] { return d.t.all() }

// A table is an ordered map from names to records. Records are stored by
// pointer so that lookups can be retained by a route.
type table[T any] struct {
	m    omap.Map[string, *T]
	live bool // m has been initialized
}

func (t *table[T]) add(name string, v T) bool {
	if !t.live {
		t.reset()
	}
	if _, ok := t.m.GetOK(name); ok {
		return false
	}
	t.m.Set(name, &v)
	return true
}

func (t *table[T]) lookup(name string) (*T, bool) {
	if !t.live {
		return nil, false
	}
	return t.m.GetOK(name)
}

func (t *table[T]) len() int {
	if !t.live {
		return 0
	}
	return t.m.Len()
}

func (t *table[T]) reset() {
	t.m = omap.New[string, *T]()
	t.live = true
}

func (t *table[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !t.live {
			return
		}
		for it := t.m.First(); it.IsValid(); it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}
