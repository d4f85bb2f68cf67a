// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package navdb implements a decoder and encoder for navigation database
// documents.
//
// A database document is a restricted form of JSON holding two arrays of
// records, waypoints and points of interest:
//
//	{
//	"waypoints": [
//		{
//			"name": "Darmstadt",
//			"latitude": 49.8728,
//			"longitude": 8.6512
//		}
//	],
//	"pois": [
//		{
//			"name": "Mensa",
//			"latitude": 49.8766,
//			"longitude": 8.6538,
//			"type": "restaurant",
//			"description": "Lunch on campus"
//		}
//	]
//	}
//
// This is not a general JSON parser: nesting, keys, and value types are fixed
// by the schema above, and strings may not contain Unicode escapes.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for database documents.
// Construct a scanner from an io.Reader and call its Next method to iterate
// over the stream. Next advances to the next input token and returns nil, or
// reports an error:
//
//	s := navdb.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input; lexical errors wrap
// ErrIllegalCharacter.
//
// # Reading
//
// The Reader type decodes a document and adds its records to a pair of
// collections, such as [db.WaypointDB] and [db.POIDB]:
//
//	var wps db.WaypointDB
//	var pois db.POIDB
//	if err := navdb.NewReader(input).Read(&wps, &pois, navdb.Merge); err != nil {
//	   log.Fatalf("Read failed: %v", err)
//	}
//
// Read stops at the first input that does not match the grammar. The error
// has concrete type *navdb.ReadError, and wraps an ErrorCode describing the
// unmet expectation:
//
//	if errors.Is(err, navdb.ExpectDbNameString) { ... }
//
// # Writing
//
// The Encoder type writes collections as a document that a Reader accepts.
// The Store type combines a Reader and an Encoder with a file.
package navdb
