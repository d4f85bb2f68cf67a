// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the navdb command-line tool.
//
// A configuration file is either YAML (with a .yaml or .yml extension) or
// JSON with comments and trailing commas permitted:
//
//	{
//	  // The database read and written by default.
//	  "database": "nav.json",
//	  "mode": "replace",
//	  "precision": 8,
//	}
//
// Unknown fields are rejected. The environment variables NAVDB_DATABASE and
// NAVDB_MODE override the corresponding settings from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/navdb"
	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvDatabase = "NAVDB_DATABASE"
	EnvMode     = "NAVDB_MODE"
)

// getenv is swapped out in tests.
var getenv = os.Getenv

// Config holds the settings of the tool.
type Config struct {
	Database  string `json:"database" yaml:"database"`   // path of the database file
	Mode      string `json:"mode" yaml:"mode"`           // "merge" or "replace"
	Precision int    `json:"precision" yaml:"precision"` // significant digits of coordinates
	Quiet     bool   `json:"quiet" yaml:"quiet"`         // discard log output
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Mode: navdb.Merge.String(), Precision: navdb.DefaultPrecision}
}

// Load reads the configuration file at path, applies environment overrides,
// and checks the result. If path == "", Load starts from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg, err = Decode(path, bytes.NewReader(data))
		if err != nil {
			return Config{}, fmt.Errorf("config %q: %w", path, err)
		}
	}
	if db := getenv(EnvDatabase); db != "" {
		cfg.Database = db
	}
	if mode := getenv(EnvMode); mode != "" {
		cfg.Mode = mode
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode decodes a configuration from r. The format is chosen by the
// extension of name. Fields absent from the input keep their defaults.
func Decode(name string, r io.Reader) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return Config{}, err
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return Config{}, err
		}
		dec := json.NewDecoder(bytes.NewReader(std))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Check reports an error if c contains an invalid setting.
func (c Config) Check() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range 0..17", c.Precision)
	}
	return nil
}

// ReadMode returns the merge mode named by c.
func (c Config) ReadMode() navdb.Mode {
	m, _ := ParseMode(c.Mode)
	return m
}

// ParseMode returns the mode named by s, which is "merge" or "replace".
// An empty string means Merge.
func ParseMode(s string) (navdb.Mode, error) {
	switch s {
	case "", "merge":
		return navdb.Merge, nil
	case "replace":
		return navdb.Replace, nil
	}
	return 0, fmt.Errorf("%w: %q", navdb.ErrUnknownMode, s)
}
