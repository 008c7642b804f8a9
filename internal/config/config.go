// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the astrocal command. Values come
// from ASTROCAL_* environment variables, optionally seeded from a .env file;
// command-line flags override them.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/matthewdargan/astrocal"
)

// Config is the resolved configuration of one run.
type Config struct {
	LogLevel string `envconfig:"ASTROCAL_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Place names a built-in location. Location, when set, overrides it with
	// "latitude longitude elevation zone", zone in hours.
	Place    string `envconfig:"ASTROCAL_PLACE" default:"greenwich"`
	Location string `envconfig:"ASTROCAL_LOCATION"`

	Criterion string        `envconfig:"ASTROCAL_CRITERION" default:"shaukat" validate:"oneof=shaukat yallop saudi babylonian"`
	Workers   int           `envconfig:"ASTROCAL_WORKERS" default:"4" validate:"min=1,max=256"`
	Timeout   time.Duration `envconfig:"ASTROCAL_TIMEOUT" default:"1m" validate:"gt=0"`
}

// Site returns the observing location the configuration names.
func (c *Config) Site() (astrocal.Location, error) {
	if c.Location != "" {
		return ParseLocation(c.Location)
	}
	l, ok := astrocal.Place(c.Place)
	if !ok {
		return astrocal.Location{}, &ConfigError{
			Type:    ErrLocation,
			Message: fmt.Sprintf("unknown place %q (known: %s)", c.Place, strings.Join(astrocal.PlaceNames(), ", ")),
		}
	}
	return l, nil
}

// ParseLocation reads "latitude longitude elevation zone": degrees north,
// degrees east, meters, and the standard-time offset in hours.
func ParseLocation(s string) (astrocal.Location, error) {
	var lat, long, elev, zone float64
	if _, err := fmt.Sscanf(s, "%f %f %f %f", &lat, &long, &elev, &zone); err != nil {
		return astrocal.Location{}, &ConfigError{Type: ErrLocation, Message: fmt.Sprintf("failed to parse location %q", s), Err: err}
	}
	l := astrocal.NewLocation(astrocal.Angle(lat), astrocal.Angle(long), elev, zone)
	if err := l.Validate(); err != nil {
		return astrocal.Location{}, &ConfigError{Type: ErrLocation, Message: fmt.Sprintf("location %q out of range", s), Err: err}
	}
	return l, nil
}

// ConfigErrorType categorizes configuration failures.
type ConfigErrorType string

const (
	// ErrDotenv indicates an explicitly named .env file could not be read.
	ErrDotenv ConfigErrorType = "DOTENV_FAILED"
	// ErrParsing indicates an environment value could not be converted to
	// its field's type.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
	// ErrValidation indicates a value is outside its allowed range.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrLocation indicates the observing location could not be resolved.
	ErrLocation ConfigErrorType = "LOCATION_INVALID"
)

// ConfigError is returned by Load and Site.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }
