// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package navdb

import (
	"errors"
	"log"
	"os"
)

// A Store reads and writes a database document in a file.
type Store struct {
	Path      string      // the database file
	Precision int         // coordinate precision for Write (see Encoder)
	Logger    *log.Logger // if nil, use the default logger
}

// Read reads the database file into wps and pois as described by
// [Reader.Read]. The file is closed before Read returns.
func (s Store) Read(wps WaypointSink, pois POISink, mode Mode) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := NewReader(f)
	r.SetLogger(s.Logger)
	return r.Read(wps, pois, mode)
}

// Write writes wps and pois to the database file, replacing any previous
// contents.
func (s Store) Write(wps WaypointSource, pois POISource) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	e := Encoder{Precision: s.Precision}
	return errors.Join(e.Encode(f, wps, pois), f.Close())
}
