// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/creachadair/navdb/db"
)

// A WaypointSource is a collection of waypoints that can be encoded.
// [*db.WaypointDB] implements this interface.
type WaypointSource interface {
	All() iter.Seq[db.Waypoint]
}

// A POISource is a collection of points of interest that can be encoded.
// [*db.POIDB] implements this interface.
type POISource interface {
	All() iter.Seq[db.POI]
}

// DefaultPrecision is the number of significant digits used to encode
// coordinates when an Encoder does not specify one.
const DefaultPrecision = 10

// An Encoder carries the settings for writing a database document.
// A zero value is ready for use with default settings.
type Encoder struct {
	// Precision is the number of significant digits written for each
	// coordinate. If Precision <= 0, DefaultPrecision is used.
	Precision int
}

func (e Encoder) precision() int {
	if e.Precision <= 0 {
		return DefaultPrecision
	}
	return e.Precision
}

// Encode writes a database document containing wps and pois to w with
// default settings.
func Encode(w io.Writer, wps WaypointSource, pois POISource) error {
	var e Encoder
	return e.Encode(w, wps, pois)
}

// Encode writes a database document containing wps and pois to w, using the
// settings from e. The output has one attribute per line, and is accepted by
// a Reader.
func (e Encoder) Encode(w io.Writer, wps WaypointSource, pois POISource) error {
	bw := bufio.NewWriter(w)
	io.WriteString(bw, "{\n\"waypoints\": [\n")
	var n int
	for wp := range wps.All() {
		if err := e.object(bw, n, wp, nil); err != nil {
			return err
		}
		n++
	}
	e.endArray(bw, n)
	io.WriteString(bw, ",\n\"pois\": [\n")

	n = 0
	for p := range pois.All() {
		if err := e.object(bw, n, p.Waypoint, &p); err != nil {
			return err
		}
		n++
	}
	e.endArray(bw, n)
	io.WriteString(bw, "\n}\n")
	return bw.Flush()
}

// object writes the i-th object of an array. If p != nil, the object is a
// point of interest.
func (e Encoder) object(w *bufio.Writer, i int, wp db.Waypoint, p *db.POI) error {
	name, err := Quote(wp.Name)
	if err != nil {
		return fmt.Errorf("encoding name %q: %w", wp.Name, err)
	}
	lat, err := e.number(wp.Latitude)
	if err != nil {
		return fmt.Errorf("encoding latitude of %q: %w", wp.Name, err)
	}
	lon, err := e.number(wp.Longitude)
	if err != nil {
		return fmt.Errorf("encoding longitude of %q: %w", wp.Name, err)
	}
	if i > 0 {
		io.WriteString(w, ",\n")
	}
	fmt.Fprintf(w, "\t{\n\t\t\"name\": %s,\n\t\t\"latitude\": %s,\n\t\t\"longitude\": %s", name, lat, lon)
	if p != nil {
		desc, err := Quote(p.Description)
		if err != nil {
			return fmt.Errorf("encoding description of %q: %w", wp.Name, err)
		}
		fmt.Fprintf(w, ",\n\t\t\"type\": %q,\n\t\t\"description\": %s", p.Category.String(), desc)
	}
	io.WriteString(w, "\n\t}")
	return nil
}

func (e Encoder) endArray(w *bufio.Writer, n int) {
	if n > 0 {
		io.WriteString(w, "\n")
	}
	io.WriteString(w, "]")
}

func (e Encoder) number(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("cannot encode %v", v)
	}
	return strconv.FormatFloat(v, 'g', e.precision(), 64), nil
}
