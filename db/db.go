// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package db defines the records of a navigation database, waypoints and
// points of interest, and the collections that store them by name.
package db

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyName is reported when a record is constructed without a name.
var ErrEmptyName = errors.New("empty record name")

// Ranges of valid coordinates, in degrees. These are not enforced when a
// record is constructed.
const (
	MaxLatitude  = 90
	MaxLongitude = 180
)

// earthRadius is the radius of the earth in kilometres.
const earthRadius = 6378

// A Category classifies a point of interest.
type Category byte

// Constants defining the valid Category values.
const (
	Default Category = iota // uncategorized
	Restaurant
	Touristic
	GasStation
	University
)

var categoryStr = [...]string{
	Default:    "default",
	Restaurant: "restaurant",
	Touristic:  "touristic",
	GasStation: "gasstation",
	University: "university",
}

// String returns the name of c as it is written in a database file.
func (c Category) String() string {
	if int(c) >= len(categoryStr) {
		return categoryStr[Default]
	}
	return categoryStr[c]
}

// ParseCategory returns the Category named by s. Unknown names map to
// Default.
func ParseCategory(s string) Category {
	for i, name := range categoryStr {
		if s == name {
			return Category(i)
		}
	}
	return Default
}

// A Waypoint is a named location.
type Waypoint struct {
	Name      string
	Latitude  float64 // degrees
	Longitude float64 // degrees
}

// NewWaypoint constructs a waypoint with the given name and coordinates.
// It reports ErrEmptyName if name == "".
func NewWaypoint(name string, lat, lon float64) (Waypoint, error) {
	if name == "" {
		return Waypoint{}, ErrEmptyName
	}
	return Waypoint{Name: name, Latitude: lat, Longitude: lon}, nil
}

func (w Waypoint) String() string {
	return fmt.Sprintf("%s (%g, %g)", w.Name, w.Latitude, w.Longitude)
}

// A POI is a point of interest: a waypoint with a category and description.
type POI struct {
	Waypoint
	Category    Category
	Description string
}

// NewPOI constructs a point of interest. It reports ErrEmptyName if name == "".
func NewPOI(cat Category, name, desc string, lat, lon float64) (POI, error) {
	wp, err := NewWaypoint(name, lat, lon)
	if err != nil {
		return POI{}, err
	}
	return POI{Waypoint: wp, Category: cat, Description: desc}, nil
}

func (p POI) String() string {
	return fmt.Sprintf("%s [%v] %q", p.Waypoint, p.Category, p.Description)
}

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b Waypoint) float64 {
	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)

	c := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)

	// Rounding can push c slightly outside the domain of Acos for coincident
	// or antipodal points.
	return earthRadius * math.Acos(max(-1, min(1, c)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
