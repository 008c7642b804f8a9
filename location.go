// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Location is an observing site. Zone is the offset of standard time from
// universal time as a fraction of a day.
type Location struct {
	Latitude  Angle   `validate:"gte=-90,lte=90"`
	Longitude Angle   `validate:"gte=-180,lte=180"`
	Elevation float64 `validate:"gte=0"` // meters
	Zone      float64 `validate:"gte=-0.5,lte=0.5834"`
}

// NewLocation returns a location with its zone given in hours.
func NewLocation(lat, long Angle, elev, zoneHours float64) Location {
	return Location{Latitude: lat, Longitude: long, Elevation: elev, Zone: hr(zoneHours)}
}

var validate = validator.New()

// Validate reports whether the location's fields are in range.
func (l Location) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}
	return nil
}

// TimeZone returns the fixed time zone of the location's standard time.
func (l Location) TimeZone() *time.Location {
	off := int(math.Round(l.Zone * secondsPerDay))
	return time.FixedZone(fmt.Sprintf("UTC%+.4g", l.Zone*24), off)
}

var places = map[string]Location{
	"greenwich":     NewLocation(51.4777815, 0, 46.9, 0),
	"mecca":         NewLocation(AngleFromDMS(21, 25, 24), AngleFromDMS(39, 49, 24), 298, 3),
	"babylon":       NewLocation(32.4794, 44.4328, 26, 3.5),
	"jerusalem":     NewLocation(31.78, 35.24, 740, 2),
	"tehran":        NewLocation(35.68, 51.42, 1100, 3.5),
	"beijing":       NewLocation(AngleFromDMS(39, 55, 0), AngleFromDMS(116, 25, 0), 43.5, 8),
	"urbana":        NewLocation(40.1, -88.2, 225, -6),
	"mount-gerizim": NewLocation(32.1994, 35.2728, 881, 2),
}

// Place returns the named location. Names are matched case-insensitively.
func Place(name string) (Location, bool) {
	l, ok := places[strings.ToLower(name)]
	return l, ok
}

// PlaceNames returns the names known to Place, sorted.
func PlaceNames() []string {
	names := make([]string, 0, len(places))
	for n := range places {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
