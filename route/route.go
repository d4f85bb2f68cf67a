// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package route composes routes from the records of a navigation database.
//
// A Route is an ordered list of stops. Each stop refers to a waypoint or a
// point of interest held by a connected collection:
//
//	var r route.Route
//	r.ConnectWaypoints(wps)
//	r.ConnectPOIs(pois)
//	r.AddWaypoint("Darmstadt")
//	r.AddPOI("Mensa", "Darmstadt")
package route

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/creachadair/navdb/db"
)

var (
	// ErrNotConnected is reported when a stop is added before the
	// collection it refers to is connected.
	ErrNotConnected = errors.New("collection not connected")

	// ErrUnknownWaypoint is reported by AddWaypoint for a name that is not in
	// the waypoint collection.
	ErrUnknownWaypoint = errors.New("unknown waypoint")

	// ErrUnknownPOI is reported by AddPOI for a name that is not in the point
	// of interest collection.
	ErrUnknownPOI = errors.New("unknown point of interest")

	// ErrNotInRoute is reported by AddPOI when no stop of the route has the
	// name to insert after.
	ErrNotInRoute = errors.New("stop not in route")

	// ErrNoPOI is reported by NearestPOI when the route has no point of
	// interest.
	ErrNoPOI = errors.New("no point of interest in route")
)

// A Stop is a single entry of a route. Exactly one of its fields is set.
type Stop struct {
	Waypoint *db.Waypoint
	POI      *db.POI
}

// IsPOI reports whether s is a point of interest.
func (s Stop) IsPOI() bool { return s.POI != nil }

// Location returns the waypoint at which s is located.
func (s Stop) Location() db.Waypoint {
	if s.POI != nil {
		return s.POI.Waypoint
	}
	return *s.Waypoint
}

// Name returns the name of the record referenced by s.
func (s Stop) Name() string { return s.Location().Name }

func (s Stop) String() string {
	if s.POI != nil {
		return "poi " + s.POI.String()
	}
	return "waypoint " + s.Waypoint.String()
}

// A Route is an ordered sequence of stops. The zero value is an empty route
// with no connected collections.
type Route struct {
	wps   *db.WaypointDB
	pois  *db.POIDB
	stops []Stop
}

// ConnectWaypoints sets the collection from which AddWaypoint resolves names.
func (r *Route) ConnectWaypoints(wps *db.WaypointDB) { r.wps = wps }

// ConnectPOIs sets the collection from which AddPOI resolves names.
func (r *Route) ConnectPOIs(pois *db.POIDB) { r.pois = pois }

// AddWaypoint appends the waypoint with the given name to the end of r.
func (r *Route) AddWaypoint(name string) error {
	if r.wps == nil {
		return fmt.Errorf("add waypoint %q: %w", name, ErrNotConnected)
	}
	wp, ok := r.wps.Lookup(name)
	if !ok {
		return fmt.Errorf("add waypoint: %w: %q", ErrUnknownWaypoint, name)
	}
	r.stops = append(r.stops, Stop{Waypoint: wp})
	return nil
}

// AddPOI inserts the point of interest with the given name immediately after
// the last stop of r named after. The anchor may be a waypoint or a point of
// interest.
func (r *Route) AddPOI(name, after string) error {
	if r.pois == nil {
		return fmt.Errorf("add poi %q: %w", name, ErrNotConnected)
	}
	p, ok := r.pois.Lookup(name)
	if !ok {
		return fmt.Errorf("add poi: %w: %q", ErrUnknownPOI, name)
	}
	for i := len(r.stops) - 1; i >= 0; i-- {
		if r.stops[i].Name() == after {
			r.stops = slices.Insert(r.stops, i+1, Stop{POI: p})
			return nil
		}
	}
	return fmt.Errorf("add poi %q: %w: %q", name, ErrNotInRoute, after)
}

// NearestPOI returns the point of interest of r closest to wp, and its
// distance from wp in kilometres. Among equally distant stops, the later
// one is chosen.
func (r *Route) NearestPOI(wp db.Waypoint) (db.POI, float64, error) {
	var best *db.POI
	dist := math.Inf(1)
	for _, s := range r.stops {
		if !s.IsPOI() {
			continue
		}
		if d := db.Distance(s.POI.Waypoint, wp); d <= dist {
			best, dist = s.POI, d
		}
	}
	if best == nil {
		return db.POI{}, 0, ErrNoPOI
	}
	return *best, dist, nil
}

// Length returns the distance in kilometres travelled by visiting the stops
// of r in order.
func (r *Route) Length() float64 {
	var sum float64
	for i := 1; i < len(r.stops); i++ {
		sum += db.Distance(r.stops[i-1].Location(), r.stops[i].Location())
	}
	return sum
}

// Len reports the number of stops in r.
func (r *Route) Len() int { return len(r.stops) }

// Stops returns a copy of the stops of r in order.
func (r *Route) Stops() []Stop { return slices.Clone(r.stops) }

// Format writes the stops of r to w, one per line.
func (r *Route) Format(w io.Writer) error {
	for i, s := range r.stops {
		if _, err := fmt.Fprintf(w, "%d. %v\n", i+1, s); err != nil {
			return err
		}
	}
	return nil
}
