package s2proj

/*------------------------------------------------------------------
 *
 * Purpose:	Projection configuration: the scale, and what to do about
 *		the poles.
 *
 * Description:	Defaults match the behaviour of libmercator.
 *		A yaml file can override them, e.g.
 *
 *			scale: 0.5
 *			pole_policy: clamp
 *
 *------------------------------------------------------------------*/

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const DEFAULT_SCALE = 0.5

type PolePolicy string

const (
	PolePassthrough PolePolicy = "passthrough" // +/-Inf at the poles, garbage in garbage out.
	PoleClamp       PolePolicy = "clamp"       // Normalize, then stop at MaxMercatorLatitude.
)

var ErrInvalidScale = errors.New("scale must be a finite number greater than zero")
var ErrUnknownPolePolicy = errors.New("unknown pole policy")

type Config struct {
	// x spans [-Scale, Scale] for longitude [-180, 180].  y uses the same scale.
	Scale      float64    `yaml:"scale"`
	PolePolicy PolePolicy `yaml:"pole_policy"`
}

func DefaultConfig() Config {
	return Config{
		Scale:      DEFAULT_SCALE,
		PolePolicy: PolePassthrough,
	}
}

func (c Config) Validate() error {
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}

	switch c.PolePolicy {
	case "", PolePassthrough, PoleClamp:
	default:
		return fmt.Errorf("%w %q (expected %q or %q)", ErrUnknownPolePolicy, c.PolePolicy, PolePassthrough, PoleClamp)
	}

	return nil
}

// If search order is changed, update the ll2merc usage text too.

var config_search_locations = []string{
	"s2proj.yaml",        // Current working directory
	"config/s2proj.yaml", // Source tree
	"/usr/local/etc/s2proj.yaml",
	"/etc/s2proj.yaml",
}

/*------------------------------------------------------------------
 *
 * Name:	LoadConfig
 *
 * Purpose:	Read projection configuration from a yaml file.
 *
 * Inputs:	path	- File to read.  Empty means try each of the
 *			  search locations in turn.
 *
 * Returns:	Defaults overlaid with whatever the file sets.
 *		Defaults alone if searching and nothing was found.
 *		An explicit path that can't be opened is an error.
 *
 *------------------------------------------------------------------*/

func LoadConfig(path string) (Config, error) {
	var fp *os.File

	if path != "" {
		var err error

		fp, err = os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("opening config file: %w", err)
		}
	} else {
		for _, location := range config_search_locations {
			var err error

			fp, err = os.Open(location)
			if err == nil {
				break
			}
		}

		if fp == nil {
			return DefaultConfig(), nil
		}
	}

	defer fp.Close()

	var data, readErr = io.ReadAll(fp)
	if readErr != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", fp.Name(), readErr)
	}

	var cfg, parseErr = ParseConfig(data)
	if parseErr != nil {
		return Config{}, fmt.Errorf("config file %s: %w", fp.Name(), parseErr)
	}

	return cfg, nil
}

// ParseConfig decodes yaml over the defaults.  Unknown keys are rejected
// so that typos don't silently fall back to a default.
func ParseConfig(data []byte) (Config, error) {
	var cfg = DefaultConfig()

	var decoder = yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var decodeErr = decoder.Decode(&cfg)
	if decodeErr != nil && !errors.Is(decodeErr, io.EOF) { // io.EOF for an empty file
		return Config{}, decodeErr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
