// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program navdb reads, rewrites, merges, and plans routes over navigation
// database files.
//
// Usage:
//
//	navdb [--config FILE] [--db FILE] [--quiet] <command> [arguments]
//
// Commands:
//
//	list                          print the records of the database
//	fmt [--output FILE]           re-encode the database canonically
//	merge --output FILE IN...     combine the database with other files
//	route --wp NAME --poi P@WP    compose and print a route
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/navdb"
	"github.com/creachadair/navdb/db"
	"github.com/creachadair/navdb/internal/config"
	"github.com/creachadair/navdb/route"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatalf("navdb: %v", err)
	}
}

// A tool carries the settings shared by all commands.
type tool struct {
	cfg config.Config
	log *log.Logger
}

const mergeHelp = `Read the database (if any) and then each input in order. The first input
is read in the configured mode; with --replace (or mode "replace"), its
waypoints replace those read before it.`

func newApp(stdout, stderr io.Writer) *cli.App {
	t := &tool{log: log.New(stderr, "navdb: ", 0)}
	return &cli.App{
		Name:      "navdb",
		Usage:     "manipulate navigation database files",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file (JSON or YAML)"},
			&cli.StringFlag{Name: "db", Usage: "database file (overrides the configuration)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "discard diagnostic output"},
		},
		Before: t.setup,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print the records of the database",
				Action: t.runList,
			},
			{
				Name:  "fmt",
				Usage: "re-encode the database canonically",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to this file instead of stdout"},
				},
				Action: t.runFmt,
			},
			{
				Name:        "merge",
				Usage:       "combine the database with other database files",
				ArgsUsage:   "IN...",
				Description: mergeHelp,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "output file"},
					&cli.BoolFlag{Name: "replace", Usage: "replace the existing waypoints"},
				},
				Action: t.runMerge,
			},
			{
				Name:  "route",
				Usage: "compose a route from database records",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "wp", Usage: "append this waypoint to the route"},
					&cli.StringSliceFlag{Name: "poi", Usage: "insert POI@STOP after the last stop named STOP"},
					&cli.StringFlag{Name: "near", Usage: "report the POI of the route nearest this waypoint"},
					&cli.BoolFlag{Name: "json", Usage: "print the report as JSON"},
				},
				Action: t.runRoute,
			},
		},
	}
}

func (t *tool) setup(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if path := ctx.String("db"); path != "" {
		cfg.Database = path
	}
	if ctx.Bool("quiet") {
		cfg.Quiet = true
	}
	if cfg.Quiet {
		t.log.SetOutput(io.Discard)
	}
	t.cfg = cfg
	return nil
}

func (t *tool) store(path string) navdb.Store {
	return navdb.Store{Path: path, Precision: t.cfg.Precision, Logger: t.log}
}

// load reads the configured database into new collections.
func (t *tool) load() (*db.WaypointDB, *db.POIDB, error) {
	if t.cfg.Database == "" {
		return nil, nil, errors.New("no database file specified (use --db)")
	}
	wps, pois := new(db.WaypointDB), new(db.POIDB)
	if err := t.store(t.cfg.Database).Read(wps, pois, t.cfg.ReadMode()); err != nil {
		return nil, nil, fmt.Errorf("read %q: %w", t.cfg.Database, err)
	}
	return wps, pois, nil
}

func (t *tool) runList(ctx *cli.Context) error {
	wps, pois, err := t.load()
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "waypoints (%d):\n", wps.Len())
	for wp := range wps.All() {
		fmt.Fprintf(w, "  %v\n", wp)
	}
	fmt.Fprintf(w, "pois (%d):\n", pois.Len())
	for p := range pois.All() {
		fmt.Fprintf(w, "  %v\n", p)
	}
	return nil
}

func (t *tool) runFmt(ctx *cli.Context) error {
	wps, pois, err := t.load()
	if err != nil {
		return err
	}
	if out := ctx.String("output"); out != "" {
		return t.store(out).Write(wps, pois)
	}
	e := navdb.Encoder{Precision: t.cfg.Precision}
	return e.Encode(ctx.App.Writer, wps, pois)
}

func (t *tool) runMerge(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no input files")
	}
	wps, pois := new(db.WaypointDB), new(db.POIDB)
	if t.cfg.Database != "" {
		if err := t.store(t.cfg.Database).Read(wps, pois, navdb.Merge); err != nil {
			return fmt.Errorf("read %q: %w", t.cfg.Database, err)
		}
	}
	mode := t.cfg.ReadMode()
	if ctx.Bool("replace") {
		mode = navdb.Replace
	}
	for _, in := range ctx.Args().Slice() {
		if err := t.store(in).Read(wps, pois, mode); err != nil {
			return fmt.Errorf("read %q: %w", in, err)
		}
		mode = navdb.Merge
	}
	t.log.Printf("writing %d waypoints and %d points of interest", wps.Len(), pois.Len())
	return t.store(ctx.String("output")).Write(wps, pois)
}

// A routeReport is the JSON form of the output of the route command.
type routeReport struct {
	Stops   []stopReport `json:"stops"`
	Length  float64      `json:"lengthKm"`
	Nearest *nearReport  `json:"nearest,omitempty"`
}

type stopReport struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category,omitempty"`
}

type nearReport struct {
	From     string  `json:"from"`
	POI      string  `json:"poi"`
	Distance float64 `json:"distanceKm"`
}

func (t *tool) runRoute(ctx *cli.Context) error {
	wps, pois, err := t.load()
	if err != nil {
		return err
	}
	var r route.Route
	r.ConnectWaypoints(wps)
	r.ConnectPOIs(pois)
	for _, name := range ctx.StringSlice("wp") {
		if err := r.AddWaypoint(name); err != nil {
			return err
		}
	}
	for _, arg := range ctx.StringSlice("poi") {
		name, after, ok := strings.Cut(arg, "@")
		if !ok {
			return fmt.Errorf("invalid --poi %q, want NAME@STOP", arg)
		}
		if err := r.AddPOI(name, after); err != nil {
			return err
		}
	}

	rep := routeReport{Length: r.Length()}
	for _, s := range r.Stops() {
		loc := s.Location()
		sr := stopReport{Kind: "waypoint", Name: loc.Name, Latitude: loc.Latitude, Longitude: loc.Longitude}
		if s.IsPOI() {
			sr.Kind, sr.Category = "poi", s.POI.Category.String()
		}
		rep.Stops = append(rep.Stops, sr)
	}
	if near := ctx.String("near"); near != "" {
		wp, ok := wps.Lookup(near)
		if !ok {
			return fmt.Errorf("%w: %q", route.ErrUnknownWaypoint, near)
		}
		p, dist, err := r.NearestPOI(*wp)
		if err != nil {
			return err
		}
		rep.Nearest = &nearReport{From: near, POI: p.Name, Distance: dist}
	}

	w := ctx.App.Writer
	if ctx.Bool("json") {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	if err := r.Format(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "length: %.3f km\n", rep.Length)
	if n := rep.Nearest; n != nil {
		fmt.Fprintf(w, "nearest poi to %s: %s (%.3f km)\n", n.From, n.POI, n.Distance)
	}
	return nil
}
