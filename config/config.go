// Package config loads the YAML run configuration of the annealtsp CLI.
//
// A document looks like:
//
//	seed: 42
//	log_level: info
//	log_format: text
//	runs: 1
//	time_limit: 30s
//	polish: false
//	schedule:
//	  initial_temperature: 1000
//	  minimal_temperature: 0.01
//	  cooling_factor: 0.98
//	map:
//	  width: 100
//	  height: 100
//	  count: 20
//	points:            # optional; replaces random map generation
//	  - {x: 0, y: 0, label: A}
//
// Keys that are absent keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/annealtsp/cities"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Seed      int64    `yaml:"seed"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	Runs      int      `yaml:"runs"`
	TimeLimit Duration `yaml:"time_limit"`
	Polish    bool     `yaml:"polish"`
	Schedule  Schedule `yaml:"schedule"`
	Map       Map      `yaml:"map"`
	Points    []Point  `yaml:"points,omitempty"`
}

// Schedule mirrors tsp.Schedule with YAML keys.
type Schedule struct {
	InitialTemperature float64 `yaml:"initial_temperature"`
	MinimalTemperature float64 `yaml:"minimal_temperature"`
	CoolingFactor      float64 `yaml:"cooling_factor"`
}

// Map describes the random city grid used when no explicit points are given.
type Map struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Count  int `yaml:"count"`
}

// Point is an explicit city. An empty label defaults to its 1-based position.
type Point struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("1m30s").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)

	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	s := tsp.DefaultSchedule()

	return &Config{
		Seed:      1,
		LogLevel:  "info",
		LogFormat: "text",
		Runs:      1,
		Schedule: Schedule{
			InitialTemperature: s.InitialTemperature,
			MinimalTemperature: s.MinimalTemperature,
			CoolingFactor:      s.CoolingFactor,
		},
		Map: Map{Width: 100, Height: 100, Count: 20},
	}
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field; failures wrap ErrInvalid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: log_level %q (must be debug, info, warn, or error)", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q (must be text or json)", ErrInvalid, c.LogFormat)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1", ErrInvalid)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit cannot be negative", ErrInvalid)
	}
	if err := c.TSPSchedule().Validate(); err != nil {
		return fmt.Errorf("%w: schedule: %w", ErrInvalid, err)
	}
	if len(c.Points) == 0 {
		if c.Map.Width < 0 || c.Map.Height < 0 {
			return fmt.Errorf("%w: map width and height cannot be negative", ErrInvalid)
		}
		if c.Map.Count < 0 {
			return fmt.Errorf("%w: map count cannot be negative", ErrInvalid)
		}
		return nil
	}
	if _, err := c.explicitPoints(); err != nil {
		return fmt.Errorf("%w: points: %w", ErrInvalid, err)
	}

	return nil
}

// TSPSchedule converts the schedule section for tsp.Solve.
func (c *Config) TSPSchedule() tsp.Schedule {
	return tsp.Schedule{
		InitialTemperature: c.Schedule.InitialTemperature,
		MinimalTemperature: c.Schedule.MinimalTemperature,
		CoolingFactor:      c.Schedule.CoolingFactor,
	}
}

// Cities returns the explicit points when present, otherwise a random map
// generated from Map and Seed.
func (c *Config) Cities() ([]tsp.Point, error) {
	if len(c.Points) > 0 {
		return c.explicitPoints()
	}

	return cities.Generate(c.Map.Width, c.Map.Height, c.Map.Count, c.Seed)
}

func (c *Config) explicitPoints() ([]tsp.Point, error) {
	var (
		labels = make([]string, len(c.Points))
		coords = make([][2]float64, len(c.Points))
		i      int
	)
	for i = range c.Points {
		labels[i] = c.Points[i].Label
		if labels[i] == "" {
			labels[i] = fmt.Sprintf("%d", i+1)
		}
		coords[i] = [2]float64{c.Points[i].X, c.Points[i].Y}
	}

	return cities.Named(labels, coords)
}
