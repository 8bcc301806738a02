// Package config provides the structures used for configuration.
//
// Configuration is read from one or more YAML files. Later files override
// the values of earlier ones, and any value not given keeps its default.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/tempconv/log"
	"github.com/lone-faerie/tempconv/temperature"
)

// Config contains the configuration of tempconv.
type Config struct {
	// Unit is the scale to convert into when no unit is given.
	Unit temperature.Scale `yaml:"unit"`
	// Precision is the number of decimal places the converted value is
	// rounded to. A negative Precision disables rounding.
	Precision int32     `yaml:"precision"`
	Log       LogConfig `yaml:"log,omitempty"`
}

// Default returns the Config used when no config file is provided.
func Default() *Config {
	return &Config{
		Unit:      temperature.Celsius,
		Precision: -1,
		Log:       defaultLog,
	}
}

// Read returns the default Config overridden by the yaml encoded config
// from r.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	cfg.Expand()
	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Load returns the Config parsed from the given yaml files, in order. Files
// that do not exist are skipped, so if none exist the default config is
// returned. If any of the given paths are directories, all the .yaml and
// .yml files in the directory are read in lexical order.
func Load(file ...string) (*Config, error) {
	cfg := Default()

	for _, name := range file {
		paths, err := expandPath(name)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("Config file not found", "path", name)
			continue
		} else if err != nil {
			return nil, err
		}

		for _, path := range paths {
			if err := cfg.loadFile(path); err != nil {
				return nil, err
			}
		}
	}

	cfg.Expand()
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Info("Loading config", "path", path)
	if err := cfg.decode(f); err != nil {
		return &fs.PathError{Op: "decode", Path: path, Err: err}
	}
	return nil
}

func expandPath(name string) ([]string, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{name}, nil
	}

	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(name, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// Expand replaces ${var} or $var in every string value of cfg according
// to the current environment variables.
func (cfg *Config) Expand() {
	cfg.Log.Output = os.ExpandEnv(cfg.Log.Output)
	cfg.Log.Format = os.ExpandEnv(cfg.Log.Format)
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}
