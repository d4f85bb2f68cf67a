// Package testutil defines support code for unit tests.
package testutil

import (
	"bytes"
	"log"

	"github.com/creachadair/navdb/db"
)

// Sample returns new collections populated with the records of SampleDocument.
func Sample() (*db.WaypointDB, *db.POIDB) {
	wps := new(db.WaypointDB)
	for _, wp := range SampleWaypoints {
		wps.Add(wp)
	}
	pois := new(db.POIDB)
	for _, p := range SamplePOIs {
		pois.Add(p)
	}
	return wps, pois
}

// SampleWaypoints are the waypoints of SampleDocument, in order by name.
var SampleWaypoints = []db.Waypoint{
	{Name: "Amsterdam", Latitude: 52.3676, Longitude: 4.9041},
	{Name: "Berlin", Latitude: 52.52, Longitude: 13.405},
	{Name: "Darmstadt", Latitude: 49.8728, Longitude: 8.6512},
}

// SamplePOIs are the points of interest of SampleDocument, in order by name.
var SamplePOIs = []db.POI{
	{
		Waypoint:    db.Waypoint{Name: "Aral", Latitude: 49.86, Longitude: 8.63},
		Category:    db.GasStation,
		Description: "Fuel and snacks",
	},
	{
		Waypoint:    db.Waypoint{Name: "Mensa", Latitude: 49.8766, Longitude: 8.6538},
		Category:    db.Restaurant,
		Description: "Lunch on campus",
	},
	{
		Waypoint:    db.Waypoint{Name: "Schloss", Latitude: 49.8725, Longitude: 8.6556},
		Category:    db.Touristic,
		Description: "Residential \"palace\"",
	},
}

// SampleDocument is the encoding of the sample records with default settings.
const SampleDocument = `{
"waypoints": [
	{
		"name": "Amsterdam",
		"latitude": 52.3676,
		"longitude": 4.9041
	},
	{
		"name": "Berlin",
		"latitude": 52.52,
		"longitude": 13.405
	},
	{
		"name": "Darmstadt",
		"latitude": 49.8728,
		"longitude": 8.6512
	}
],
"pois": [
	{
		"name": "Aral",
		"latitude": 49.86,
		"longitude": 8.63,
		"type": "gasstation",
		"description": "Fuel and snacks"
	},
	{
		"name": "Mensa",
		"latitude": 49.8766,
		"longitude": 8.6538,
		"type": "restaurant",
		"description": "Lunch on campus"
	},
	{
		"name": "Schloss",
		"latitude": 49.8725,
		"longitude": 8.6556,
		"type": "touristic",
		"description": "Residential \"palace\""
	}
]
}
`

// Logger returns a logger that writes to the returned buffer without
// timestamps.
func Logger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}
